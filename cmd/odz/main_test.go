package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]bool{
		"fast":    true,
		"default": true,
		"":        true,
		"best":    true,
		"extreme": false,
	}
	for s, ok := range cases {
		_, err := parseLevel(s)
		if (err == nil) != ok {
			t.Errorf("parseLevel(%q): err = %v, want ok=%v", s, err, ok)
		}
	}
}

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	app := &cli.App{
		Name:           "odz",
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:    "compress",
				Aliases: []string{"c"},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "level", Value: "default"},
				},
				Action: runCompress,
			},
			{Name: "decompress", Aliases: []string{"d"}, Action: runDecompress},
		},
	}
	return app.Run(append([]string{"odz"}, args...))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	compressed := filepath.Join(dir, "out.odz")
	roundTripped := filepath.Join(dir, "roundtrip.txt")

	payload := bytes.Repeat([]byte("hello from the command line\n"), 500)
	if err := os.WriteFile(in, payload, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := runApp(t, "compress", "-level", "best", in, compressed); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := runApp(t, "decompress", compressed, roundTripped); err != nil {
		t.Fatalf("decompress: %v", err)
	}

	got, err := os.ReadFile(roundTripped)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

func TestCompressMissingArgs(t *testing.T) {
	if err := runApp(t, "compress", "onlyone"); err == nil {
		t.Fatal("expected an error for a missing OUTPUT argument")
	}
}

func TestCompressBadLevel(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	os.WriteFile(in, []byte("data"), 0o644)
	if err := runApp(t, "compress", "-level", "ludicrous", in, filepath.Join(dir, "out.odz")); err == nil {
		t.Fatal("expected an error for an unknown compression level")
	}
}
