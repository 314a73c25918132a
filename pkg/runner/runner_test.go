package runner_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/cipherkit/internal/runtime"
	"github.com/aretw0/cipherkit/internal/testutils"
	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/observability"
	"github.com/aretw0/cipherkit/pkg/runner"
	"github.com/aretw0/cipherkit/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *session.Manager {
	return session.NewManager(runtime.NewEngine())
}

func TestRunner_Run_TextFlow(t *testing.T) {
	input := strings.Join([]string{
		"Hello",
		":mode",
		":method caesar",
		":shift 1",
		"abc",
		":history",
		":quit",
		"never read",
	}, "\n") + "\n"
	out := &bytes.Buffer{}

	r := runner.NewRunner(
		runner.WithSessionID("main"),
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(input), out, runner.WithPrompt(""))),
	)
	mgr := newManager()
	require.NoError(t, r.Run(context.Background(), mgr))

	got := out.String()
	assert.Contains(t, got, "[Base64 · Encoder]\nSGVsbG8=")
	assert.Contains(t, got, "[Base64 · Decoder]\nHello")
	assert.Contains(t, got, "[Caesar Cipher · Decoder · shift 1]\nzab", "mode survives a method change")
	assert.Contains(t, got, "#2 Base64 Decoder: SGVsbG8= -> Hello")
	assert.Contains(t, got, "#1 Base64 Encoder: Hello -> SGVsbG8=")

	snap, err := mgr.Snapshot("main")
	require.NoError(t, err)
	assert.Equal(t, "abc", snap.Input)
	assert.Equal(t, 1, snap.Shift)
}

func TestRunner_Run_RecoversFromBadCommands(t *testing.T) {
	input := ":method rot13\n:bogus\n:restore 9\nok\n"
	out := &bytes.Buffer{}

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(input), out, runner.WithPrompt(""))))
	require.NoError(t, r.Run(context.Background(), newManager()))

	got := out.String()
	assert.Contains(t, got, "Error: unknown method")
	assert.Contains(t, got, `Error: invalid command: ":bogus"`)
	assert.Contains(t, got, "Error: history entry not found")
	assert.Contains(t, got, "[Base64 · Encoder]\nb2s=")
}

func TestRunner_Run_Sessions(t *testing.T) {
	input := "one\n:session other\ntwo\n:session main\n:show\n:sessions\n"
	out := &bytes.Buffer{}

	r := runner.NewRunner(
		runner.WithSessionID("main"),
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(input), out, runner.WithPrompt(""))),
	)
	mgr := newManager()
	require.NoError(t, r.Run(context.Background(), mgr))

	got := out.String()
	assert.Contains(t, got, "Created session other")
	assert.Contains(t, got, "Switched to session main")
	assert.Contains(t, got, "* main\n  other")

	mainSnap, err := mgr.Snapshot("main")
	require.NoError(t, err)
	assert.Equal(t, "one", mainSnap.Input)

	otherSnap, err := mgr.Snapshot("other")
	require.NoError(t, err)
	assert.Equal(t, "two", otherSnap.Input)
}

func TestRunner_Run_JSONFlow(t *testing.T) {
	path := testutils.WriteFile(t, "payload.json", []byte("{\n  \"b\": 1,\n  \"a\": [true, null]\n}\n"))

	cmds := []runner.Command{
		{Op: runner.OpMethod, Method: "json"},
		{Op: runner.OpMode},
		{Op: runner.OpLoad, Path: path},
		{Op: runner.OpLoad, Path: filepath.Join(filepath.Dir(path), "missing.json")},
		{Op: runner.OpStats},
		{Op: runner.OpMethods},
	}
	var in bytes.Buffer
	enc := json.NewEncoder(&in)
	for _, c := range cmds {
		require.NoError(t, enc.Encode(c))
	}
	out := &bytes.Buffer{}

	r := runner.NewRunner(runner.WithInputHandler(runner.NewJSONHandler(&in, out)))
	require.NoError(t, r.Run(context.Background(), newManager()))

	var replies []runner.Reply
	sc := bufio.NewScanner(out)
	for sc.Scan() {
		var reply runner.Reply
		require.NoError(t, json.Unmarshal(sc.Bytes(), &reply))
		replies = append(replies, reply)
	}
	require.Len(t, replies, len(cmds))

	load := replies[2]
	assert.Empty(t, load.Error)
	assert.Contains(t, load.Message, "Loaded")
	require.NotNil(t, load.Snapshot)
	assert.Equal(t, domain.ModeDecode, load.Snapshot.Mode)
	assert.Equal(t, `{"b":1,"a":[true,null]}`, load.Snapshot.Output)

	assert.Contains(t, replies[3].Error, "failed to open file")
	assert.Equal(t, runner.ErrStatsDisabled.Error(), replies[4].Error)
	assert.Len(t, replies[5].Methods, len(domain.Methods()))

	for _, reply := range replies {
		assert.NotEmpty(t, reply.Session)
	}
}

func TestRunner_Run_Stats(t *testing.T) {
	m, err := observability.New("test")
	require.NoError(t, err)

	mgr := session.NewManager(runtime.NewEngine(runtime.WithLifecycleHooks(m.Hooks())))
	out := &bytes.Buffer{}
	r := runner.NewRunner(
		runner.WithStats(m.Summary),
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader("abc\n:stats\n"), out, runner.WithPrompt(""))),
	)
	require.NoError(t, r.Run(context.Background(), mgr))

	assert.Contains(t, out.String(), `test_transforms_total{method="base64",mode="encode",outcome="ok"} 1`)
}

func TestRunner_LoadLimits(t *testing.T) {
	big := testutils.WriteFile(t, "big.txt", []byte(strings.Repeat("a", 11)))
	bin := testutils.WriteFile(t, "bin.dat", []byte{0xff, 0xfe})

	mgr := newManager()
	active, _ := mgr.Open("s")
	r := runner.NewRunner(runner.WithMaxFileSize(10))

	reply := r.Dispatch(mgr, &active, runner.Command{Op: runner.OpLoad, Path: big})
	assert.Contains(t, reply.Error, "input exceeds maximum allowed size")

	reply = r.Dispatch(mgr, &active, runner.Command{Op: runner.OpLoad, Path: bin})
	assert.Equal(t, runner.ErrInvalidUTF8.Error(), reply.Error)
}
