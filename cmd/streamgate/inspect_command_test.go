package main

import (
	"encoding/json"
	"testing"

	"streamgate/internal/testsupport"
)

func TestInspectRendersStreamTable(t *testing.T) {
	env := setupCLITestEnv(t)
	probe := writeProbe(t, env.baseDir,
		testsupport.Video("h264"),
		testsupport.Audio("aac", 2, "jpn"),
		testsupport.Audio("ac3", 6, ""),
		testsupport.Subtitle("eng"),
	)

	out, _, err := runCLI(t, []string{"inspect", "--probe-json", probe}, env.configPath, "")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "Streams: 1 video, 2 audio, 1 subtitle, 4 total")
	requireContains(t, out, "Japanese (jpn)")
	requireContains(t, out, "English (eng)")
	requireContains(t, out, "Audio languages: jpn, und")
	requireNotContains(t, out, "\x1b[")
}

func TestInspectJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	probe := writeProbe(t, env.baseDir, testsupport.Audio("AAC", 2, "ENG"))

	out, _, err := runCLI(t, []string{"inspect", "--json", "--probe-json", probe}, env.configPath, "")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var list []map[string]any
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(list) != 1 || list[0]["Codec"] != "aac" || list[0]["Language"] != "eng" {
		t.Fatalf("unexpected streams %v", list)
	}
}
