package rules

import (
	"strings"
	"testing"

	"streamgate/internal/media/ffprobe"
)

func compliance(langs string) ComplianceConfig {
	return ComplianceConfig{Languages: ParseList(langs), TargetCodec: "aac", TargetChannels: 2}
}

func TestComplianceFailsWhenPresentLanguageHasNoCompliantStream(t *testing.T) {
	in := Input{Probe: probeOf(video("h264"), audio("aac", 2, "eng"), audio("ac3", 6, "jpn"))}
	decision := EvaluateCompliance(compliance("eng,jpn"), in)
	if decision.Proceed {
		t.Fatal("expected failure when jpn has no AAC 2.0 stream")
	}
	want := strings.Join([]string{
		"Stream 1: lang=eng, codec=aac, channels=2, compliant=true",
		"Stream 2: lang=jpn, codec=ac3, channels=6, compliant=false",
		"Language eng: 1 of 1 streams are AAC 2.0. Language passes.",
		"Language jpn: none of 1 streams are AAC 2.0. Language fails.",
		"At least one selected language has no AAC 2.0 stream (jpn). Breaking out of plugin stack.",
	}, "\n") + "\n"
	if got := decision.Log(); got != want {
		t.Fatalf("unexpected log:\n%s\nwant:\n%s", got, want)
	}
	if decision.Route != RouteNone || decision.Output() != RouteFail {
		t.Fatalf("unexpected routing: route=%d output=%d", decision.Route, decision.Output())
	}
}

func TestComplianceAbsentLanguagePasses(t *testing.T) {
	in := Input{Probe: probeOf(audio("dts", 6, "fre"))}
	decision := EvaluateCompliance(compliance("eng"), in)
	if !decision.Proceed {
		t.Fatalf("expected pass, log: %s", decision.Log())
	}
	if decision.Reason != "no_target_languages_present" {
		t.Fatalf("unexpected reason %q", decision.Reason)
	}
	if !strings.Contains(decision.Log(), "No matching languages present in the file") {
		t.Fatalf("unexpected log: %s", decision.Log())
	}
}

func TestComplianceOneCompliantStreamIsEnough(t *testing.T) {
	in := Input{Probe: probeOf(
		audio("truehd", 8, "eng"),
		audio("aac", 2, "eng"),
		audio("ac3", 6, "eng"),
	)}
	decision := EvaluateCompliance(compliance("eng"), in)
	if !decision.Proceed {
		t.Fatalf("expected pass with one compliant stream, log: %s", decision.Log())
	}
	if !strings.Contains(decision.Log(), "Language eng: 1 of 3 streams are AAC 2.0. Language passes.") {
		t.Fatalf("unexpected log: %s", decision.Log())
	}
}

func TestComplianceSkipsAbsentLanguageAmongPresent(t *testing.T) {
	in := Input{Probe: probeOf(audio("aac", 2, "eng"))}
	decision := EvaluateCompliance(compliance("eng,spa"), in)
	if !decision.Proceed {
		t.Fatalf("expected pass, log: %s", decision.Log())
	}
	if !strings.Contains(decision.Log(), "Language spa: not present in file, skipping.") {
		t.Fatalf("expected skip line, got: %s", decision.Log())
	}
}

func TestComplianceFailOpenCases(t *testing.T) {
	tests := []struct {
		name   string
		cfg    ComplianceConfig
		probe  *ffprobe.Result
		reason string
	}{
		{"nil probe", compliance("eng"), nil, "no_probe_data"},
		{"nil streams", compliance("eng"), &ffprobe.Result{}, "no_probe_data"},
		{"empty streams", compliance("eng"), &ffprobe.Result{Streams: []ffprobe.Stream{}}, "no_audio_streams"},
		{"video only", compliance("eng"), probeOf(video("h264")), "no_audio_streams"},
		{"no languages", compliance(" , "), probeOf(audio("ac3", 6, "eng")), "no_languages_configured"},
		{"untagged audio", compliance("eng"), probeOf(audio("ac3", 6, "")), "no_target_languages_present"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := EvaluateCompliance(tt.cfg, Input{Probe: tt.probe})
			if !decision.Proceed {
				t.Fatalf("expected pass, log: %s", decision.Log())
			}
			if decision.Reason != tt.reason {
				t.Fatalf("reason = %q, want %q", decision.Reason, tt.reason)
			}
			if len(decision.Entries) == 0 {
				t.Fatal("expected a log entry for every branch")
			}
		})
	}
}

func TestComplianceCustomTarget(t *testing.T) {
	cfg := ComplianceConfig{Languages: []string{"eng"}, TargetCodec: "EAC3", TargetChannels: 6}
	decision := EvaluateCompliance(cfg, Input{Probe: probeOf(audio("eac3", 6, "eng"))})
	if !decision.Proceed {
		t.Fatalf("expected pass, log: %s", decision.Log())
	}
	if !strings.Contains(decision.Log(), "Stream 0: lang=eng, codec=eac3, channels=6, compliant=true") || !strings.Contains(decision.Log(), "EAC3 5.1") {
		t.Fatalf("unexpected log: %s", decision.Log())
	}
}

func TestComplianceDefaultsTarget(t *testing.T) {
	cfg := ComplianceConfig{Languages: []string{"eng"}}
	decision := EvaluateCompliance(cfg, Input{Probe: probeOf(audio("aac", 2, "eng"))})
	if !decision.Proceed {
		t.Fatalf("expected aac/2 default target, log: %s", decision.Log())
	}
}

func TestTargetLabel(t *testing.T) {
	tests := []struct {
		codec    string
		channels int
		expected string
	}{
		{"aac", 2, "AAC 2.0"},
		{"ac3", 6, "AC3 5.1"},
		{"truehd", 8, "TRUEHD 7.1"},
		{"opus", 4, "OPUS 4ch"},
	}
	for _, tt := range tests {
		if got := targetLabel(tt.codec, tt.channels); got != tt.expected {
			t.Errorf("targetLabel(%q, %d) = %q, want %q", tt.codec, tt.channels, got, tt.expected)
		}
	}
}
