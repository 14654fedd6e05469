package pulse

// Fields flatten an object for filtering and projection (see props.Filter
// and props.Select). Keys are the libpulse field names plus every key of the
// object's property list.

func fieldsWith(properties map[string]string, fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(properties)+len(fields))

	for k, v := range properties {
		out[k] = v
	}

	for k, v := range fields {
		out[k] = v
	}

	return out
}

func propertiesOf[T any](info *T, get func(*T) map[string]string) map[string]string {
	if info == nil {
		return nil
	}

	return get(info)
}

func (self *Sink) Fields() map[string]interface{} {
	return fieldsWith(propertiesOf(self.info, func(i *SinkInfo) map[string]string { return i.Properties }), map[string]interface{}{
		`index`:               self.Index,
		`name`:                self.Name,
		`description`:         self.Description,
		`driver`:              self.DriverName,
		`owner_module`:        self.ModuleIndex,
		`card`:                self.CardIndex,
		`channels`:            self.Channels,
		`monitor_source`:      self.MonitorSourceIndex,
		`monitor_source_name`: self.MonitorSourceName,
		`mute`:                self.Muted,
		`n_ports`:             self.NumPorts,
		`n_volume_steps`:      self.NumVolumeSteps,
		`active_port`:         self.ActivePort,
		`state`:               self.State.String(),
		`volume`:              self.VolumeFactor,
	})
}

func (self *Source) Fields() map[string]interface{} {
	return fieldsWith(propertiesOf(self.info, func(i *SourceInfo) map[string]string { return i.Properties }), map[string]interface{}{
		`index`:                self.Index,
		`name`:                 self.Name,
		`description`:          self.Description,
		`driver`:               self.DriverName,
		`owner_module`:         self.ModuleIndex,
		`card`:                 self.CardIndex,
		`channels`:             self.Channels,
		`monitor_of_sink`:      self.MonitorOfSinkIndex,
		`monitor_of_sink_name`: self.MonitorOfSinkName,
		`mute`:                 self.Muted,
		`n_ports`:              self.NumPorts,
		`n_volume_steps`:       self.NumVolumeSteps,
		`active_port`:          self.ActivePort,
		`state`:                self.State.String(),
		`base_volume`:          self.BaseVolume.Factor(),
		`volume`:               self.VolumeFactor,
	})
}

func (self *SinkInput) Fields() map[string]interface{} {
	return fieldsWith(propertiesOf(self.info, func(i *SinkInputInfo) map[string]string { return i.Properties }), map[string]interface{}{
		`index`:        self.Index,
		`name`:         self.Name,
		`owner_module`: self.ModuleIndex,
		`client`:       self.ClientIndex,
		`sink`:         self.SinkIndex,
		`channels`:     self.Channels,
		`corked`:       self.Corked,
		`mute`:         self.Muted,
		`volume`:       self.VolumeFactor,
	})
}

func (self *SourceOutput) Fields() map[string]interface{} {
	return fieldsWith(propertiesOf(self.info, func(i *SourceOutputInfo) map[string]string { return i.Properties }), map[string]interface{}{
		`index`:        self.Index,
		`name`:         self.Name,
		`owner_module`: self.ModuleIndex,
		`client`:       self.ClientIndex,
		`source`:       self.SourceIndex,
		`channels`:     self.Channels,
		`corked`:       self.Corked,
		`mute`:         self.Muted,
		`volume`:       self.VolumeFactor,
	})
}

func (self *Client) Fields() map[string]interface{} {
	return fieldsWith(propertiesOf(self.info, func(i *ClientInfo) map[string]string { return i.Properties }), map[string]interface{}{
		`index`:        self.Index,
		`name`:         self.Name,
		`owner_module`: self.OwnerModuleIndex,
		`driver`:       self.Driver,
	})
}

func (self *Module) Fields() map[string]interface{} {
	return fieldsWith(propertiesOf(self.info, func(i *ModuleInfo) map[string]string { return i.Properties }), map[string]interface{}{
		`index`:    self.Index,
		`name`:     self.Name,
		`argument`: self.Argument,
		`n_used`:   self.NumUsed,
		`loaded`:   self.IsLoaded(),
	})
}

func (self *Card) Fields() map[string]interface{} {
	return fieldsWith(propertiesOf(self.info, func(i *CardInfo) map[string]string { return i.Properties }), map[string]interface{}{
		`index`:          self.Index,
		`name`:           self.Name,
		`owner_module`:   self.ModuleIndex,
		`driver`:         self.Driver,
		`active_profile`: self.ActiveProfile,
		`n_profiles`:     len(self.Profiles),
		`n_ports`:        self.NumPorts,
	})
}

func (self *Sample) Fields() map[string]interface{} {
	return fieldsWith(propertiesOf(self.info, func(i *SampleInfo) map[string]string { return i.Properties }), map[string]interface{}{
		`index`:       self.Index,
		`name`:        self.Name,
		`channels`:    self.Channels,
		`duration`:    uint64(self.Duration),
		`bytes`:       self.Bytes,
		`lazy`:        self.Lazy,
		`filename`:    self.Filename,
		`volume`:      self.VolumeFactor,
		`sample_spec`: SampleSpecString(self.SampleSpec),
	})
}
