package pulse

import (
	"testing"
	"time"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/callback"
	"github.com/stretchr/testify/require"
)

func testConn(t *testing.T, name string) *Conn {
	conn, err := New(name)

	if err != nil {
		t.Skipf("no PulseAudio server reachable: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

func TestSingleShotTrampolineFiresOnce(t *testing.T) {
	assert := require.New(t)
	scope := callback.NewScope(nil)
	calls := 0

	tok := scope.Once(func(ok bool) {
		assert.True(ok)
		calls++
	})

	goContextSuccess(nil, 1, userdata(tok))
	goContextSuccess(nil, 1, userdata(tok))

	assert.Equal(1, calls)
	assert.Zero(scope.Pending())
}

func TestTrampolineContainsPanic(t *testing.T) {
	assert := require.New(t)
	scope := callback.NewScope(nil)

	tok := scope.Once(func(uint32) {
		panic(`boom`)
	})

	assert.NotPanics(func() {
		goContextIndex(nil, 7, userdata(tok))
	})

	assert.Zero(scope.Pending())

	var got uint32
	tok = scope.Once(func(i uint32) {
		got = i
	})

	goContextIndex(nil, 42, userdata(tok))
	assert.EqualValues(42, got)
}

func TestMultiUseTrampolineReplace(t *testing.T) {
	assert := require.New(t)
	slot := callback.NewMultiUse(nil)
	defer slot.Close()

	var a, b int

	first := slot.Set(func() { a++ })
	goOperationNotify(nil, userdata(first))

	second := slot.Set(func() { b++ })
	goOperationNotify(nil, userdata(first))
	goOperationNotify(nil, userdata(second))
	goOperationNotify(nil, userdata(second))

	assert.Equal(1, a)
	assert.Equal(2, b)
}

func TestSubscribeTrampolineSplitsEvent(t *testing.T) {
	assert := require.New(t)
	slot := callback.NewMultiUse(nil)
	defer slot.Close()

	var got Event

	tok := slot.Set(func(facility capi.SubscriptionEventType, operation capi.SubscriptionEventType, index uint32) {
		got = eventOf(facility, operation, index)
	})

	goContextSubscribe(nil, 0x10|0x2, 9, userdata(tok))

	assert.Equal(SinkInputEvent, got.Type)
	assert.Equal(`change`, got.Operation)
	assert.EqualValues(9, got.Index)
}

func TestZeroTokenIsIgnored(t *testing.T) {
	require.NotPanics(t, func() {
		goContextNotify(nil, nil)
		goContextDrain(nil, nil)
		goMainloopOnce(nil, nil)
	})
}

func TestExtractEvents(t *testing.T) {
	assert := require.New(t)

	assert.Equal([]EventType{SinkEvent, ModuleEvent}, ExtractEvents(int(SinkEvent|ModuleEvent)))
	assert.Len(ExtractEvents(int(AllEvent)), 9)
	assert.Empty(ExtractEvents(0))
	assert.Equal(`sink-input`, SinkInputEvent.String())
}

func TestParseEventType(t *testing.T) {
	assert := require.New(t)

	assert.Equal(SinkInputEvent, ParseEventType(`sink-input`))
	assert.Equal(AllEvent, ParseEventType(`all`))
	assert.Equal(NullEvent, ParseEventType(`speaker`))
}

func TestSubscriptionDropsWhenFull(t *testing.T) {
	assert := require.New(t)
	sub := newSubscription(1)

	sub.send(Event{Type: SinkEvent})
	sub.send(Event{Type: SourceEvent})
	sub.stop()
	sub.stop()
	sub.send(Event{Type: CardEvent})

	var got []Event

	for e := range sub.ch {
		got = append(got, e)
	}

	assert.Equal([]Event{{Type: SinkEvent}}, got)
}

func TestDiffuseProperties(t *testing.T) {
	assert := require.New(t)

	out := diffuseProperties(map[string]string{
		`application.name`:       `test`,
		`application.process.id`: `42`,
	})

	assert.Contains(out, `application`)

	sink := &Sink{
		Properties: out,
		info: &SinkInfo{
			Properties: map[string]string{`application.process.id`: `42`},
		},
	}

	assert.Equal(`test`, sink.P(`application.name`).String())

	var decoded struct {
		PID int `key:"application.process.id"`
	}

	assert.NoError(sink.Decode(&decoded))
	assert.Equal(42, decoded.PID)
}

func TestStreamOptionsDefaultSpec(t *testing.T) {
	assert := require.New(t)

	assert.Equal(DefaultSampleSpec(), StreamOptions{}.sampleSpec())

	spec := capi.SampleSpec{Format: capi.SampleU8, Rate: 8000, Channels: 1}
	assert.Equal(spec, StreamOptions{SampleSpec: spec}.sampleSpec())
}

func TestListState(t *testing.T) {
	assert := require.New(t)

	assert.Equal(ListItem, listStateOf(0))
	assert.Equal(ListEnd, listStateOf(1))
	assert.Equal(ListError, listStateOf(-1))
}

func TestNewConn(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-create`)

	assert.NotEmpty(conn.ID)
	assert.NoError(conn.GetLastError())
}

func TestGetServerInfo(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-get-server-info`)

	info, err := conn.GetServerInfo()
	assert.NoError(err)
	assert.NotEmpty(info.ServerVersion)
	assert.True(info.SampleSpec.Valid())
	assert.NotZero(info.LibraryProtocolVersion)
}

func TestGetSinks(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-get-sinks`)

	sinks, err := conn.GetSinks()
	assert.NoError(err)

	for _, sink := range sinks {
		assert.NotEmpty(sink.Name)
		assert.NotNil(sink.Info())
	}

	none, err := conn.GetSinks(`name=this-sink-does-not-exist`)
	assert.NoError(err)
	assert.Empty(none)

	_, err = conn.GetSinks(`Name/this-sink-does-not-exist`)
	assert.Error(err)
}

func TestGetModulesAndClients(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-get-modules`)

	modules, err := conn.GetModules()
	assert.NoError(err)
	assert.NotEmpty(modules)

	clients, err := conn.GetClients(`application.name=test-conn-get-modules`)
	assert.NoError(err)
	assert.Len(clients, 1)

	loaded, err := conn.GetModules(`n_used>=0`, `loaded=true`)
	assert.NoError(err)
	assert.Len(loaded, len(modules))
}

func TestGetCardsSourceOutputsAndSamples(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-get-cards`)

	cards, err := conn.GetCards()
	assert.NoError(err)

	for _, card := range cards {
		assert.NotEmpty(card.Name)
		assert.Equal(card.Name, card.Fields()[`name`])

		if card.ActiveProfile != `` {
			assert.True(card.HasProfile(card.ActiveProfile))
		}

		byName, err := conn.GetCard(card.Name)
		assert.NoError(err)
		assert.Equal(card.Index, byName.Index)
	}

	_, err = conn.GetCard(`this-card-does-not-exist`)
	assert.Error(err)

	outputs, err := conn.GetSourceOutputs()
	assert.NoError(err)

	for _, output := range outputs {
		assert.NotNil(output.Info())
	}

	_, err = conn.GetSamples()
	assert.NoError(err)
}

func TestStat(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-stat`)

	stat, err := conn.Stat()
	assert.NoError(err)
	assert.NotZero(stat.MemblockTotal)
	assert.GreaterOrEqual(stat.MemblockTotalSize, stat.MemblockTotal)
}

func TestUnloadMissingModule(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-unload`)

	err := conn.UnloadModule(capi.InvalidIndex - 1)
	assert.Error(err)
}

func TestContextPendingAfterCompletedRequests(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-pending`)

	for i := 0; i < 3; i++ {
		_, err := conn.GetServerInfo()
		assert.NoError(err)
	}

	conn.Lock()
	assert.Zero(conn.Context().Pending())
	conn.Unlock()
}

func TestFailedRequestReleasesCallback(t *testing.T) {
	assert := require.New(t)
	scope := callback.NewScope(nil)
	calls := 0

	tok := scope.Once(func(bool) { calls++ })
	assert.Equal(1, scope.Pending())

	op, err := newOperation(nil, scope, tok, func() error {
		return Error{Code: capi.ErrBadState}
	})

	assert.Nil(op)
	assert.True(IsCode(err, capi.ErrBadState))
	assert.Zero(scope.Pending())

	// a late native reply finds nothing to call
	goContextSuccess(nil, 1, userdata(tok))
	assert.Zero(calls)

	tok = scope.Once(func(bool) { calls++ })
	_, err = newOperation(nil, scope, tok, func() error { return nil })
	assert.ErrorIs(err, ErrNullHandle)
	assert.Zero(scope.Pending())
}

func TestOperationCancelReleasesCallback(t *testing.T) {
	assert := require.New(t)
	scope := callback.NewScope(nil)
	calls := 0

	tok := scope.Once(func(bool) { calls++ })
	op := &Operation{
		scope: scope,
		token: tok,
	}

	op.Cancel()
	assert.Zero(scope.Pending())
	assert.Equal(capi.OperationCancelled, op.State())

	goContextSuccess(nil, 1, userdata(tok))
	assert.Zero(calls)

	assert.NotPanics(func() { op.Cancel() })
	assert.NoError(op.Close())
}

func unconnectedConn(t *testing.T, timeout time.Duration) *Conn {
	ml, err := NewThreadedMainloop()
	require.NoError(t, err)

	t.Cleanup(func() {
		ml.Close()
	})

	return &Conn{
		OperationTimeout: timeout,
		mainloop:         ml,
	}
}

func TestConnTimeoutCancelsOperation(t *testing.T) {
	assert := require.New(t)
	conn := unconnectedConn(t, 20*time.Millisecond)
	scope := callback.NewScope(nil)
	var tok callback.Token

	err := conn.success(func(fn func(bool)) (*Operation, error) {
		tok = scope.Once(fn)

		return &Operation{
			scope: scope,
			token: tok,
		}, nil
	})

	assert.True(IsCode(err, capi.ErrTimeout))
	assert.Zero(scope.Pending())

	assert.NotPanics(func() {
		goContextSuccess(nil, 1, userdata(tok))
	})
}

func TestConnCompletesBeforeTimeout(t *testing.T) {
	assert := require.New(t)
	conn := unconnectedConn(t, time.Second)
	scope := callback.NewScope(nil)

	err := conn.do(func(done func(error)) (*Operation, error) {
		tok := scope.Once(func(bool) { done(nil) })
		goContextSuccess(nil, 1, userdata(tok))

		return &Operation{scope: scope}, nil
	})

	assert.NoError(err)
	assert.Zero(scope.Pending())
}

func TestDrainUnconnectedContext(t *testing.T) {
	assert := require.New(t)
	ml, err := NewThreadedMainloop()
	assert.NoError(err)
	defer ml.Close()

	ctx, err := NewContext(ml, `test-drain-unconnected`)
	assert.NoError(err)
	defer ctx.Close()

	op, err := ctx.Drain(func() {})
	assert.Nil(op)
	assert.True(IsCode(err, capi.ErrBadState))
	assert.Zero(ctx.Pending())
}

func TestContextCloseReleasesInFlightRequest(t *testing.T) {
	assert := require.New(t)
	conn := testConn(t, `test-conn-close-in-flight`)
	calls := 0

	conn.Lock()
	defer conn.Unlock()

	ctx := conn.Context()

	op, err := ctx.GetServerInfo(func(*ServerInfo) { calls++ })
	assert.NoError(err)
	assert.Equal(1, ctx.Pending())

	assert.NoError(op.Close())
	assert.NoError(ctx.Close())

	assert.Zero(ctx.Pending())
	assert.Zero(calls)
}
