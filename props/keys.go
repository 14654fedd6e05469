package props

// Well-known property list keys.
const (
	MediaName             = `media.name`
	MediaRole             = `media.role`
	MediaFilename         = `media.filename`
	ApplicationName       = `application.name`
	ApplicationID         = `application.id`
	ApplicationVersion    = `application.version`
	ApplicationProcessBin = `application.process.binary`
	DeviceDescription     = `device.description`
	ModuleDescription     = `module.description`
)

// Format property keys, used by format info objects.
const (
	FormatSampleFormat = `format.sample_format`
	FormatRate         = `format.rate`
	FormatChannels     = `format.channels`
	FormatChannelMap   = `format.channel_map`
)
