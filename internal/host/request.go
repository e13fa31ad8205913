package host

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"streamgate/internal/media/ffprobe"
	"streamgate/internal/rules"
	"streamgate/internal/services"
)

// Operation names accepted in the "rule" field besides the rule families.
const (
	OpCopy        = "copy"
	OpCopyWorkDir = "copy-workdir"
)

// Convention selects the response shape.
type Convention string

const (
	ConventionFlag  Convention = "flag"
	ConventionPorts Convention = "ports"
)

// Inputs are the host's plugin inputs. Nil fields fall back to configuration;
// an explicit empty string is honoured as empty.
type Inputs struct {
	LanguagesToCheck        *string `json:"languagesToCheck,omitempty"`
	TargetCodec             *string `json:"targetCodec,omitempty"`
	TargetChannels          *int    `json:"targetChannels,omitempty"`
	PreferredAudioLanguages *string `json:"preferredAudioLanguages,omitempty"`
	UnwantedVideoCodecs     *string `json:"unwantedVideoCodecs,omitempty"`
}

// Request is one rule evaluation.
type Request struct {
	Rule        string          `json:"rule"`
	File        string          `json:"file"`
	FFProbeData json.RawMessage `json:"ffProbeData,omitempty"`
	Inputs      Inputs          `json:"inputs"`
	// Convention overrides the rule's default response shape.
	Convention Convention `json:"convention,omitempty"`
}

// CopyRequest is one copy operation. Nil fields fall back to configuration.
type CopyRequest struct {
	InputFile        string `json:"inputFile"`
	OriginalFile     string `json:"originalFile,omitempty"`
	LibraryRoot      string `json:"libraryRoot,omitempty"`
	OutputDirectory  string `json:"outputDirectory,omitempty"`
	KeepRelativePath *bool  `json:"keepRelativePath,omitempty"`
	MakeWorkingFile  *bool  `json:"makeWorkingFile,omitempty"`
	WorkDir          string `json:"workDir,omitempty"`
}

// envelope is the union of every request shape on the wire.
type envelope struct {
	Request
	CopyRequest
}

func decodeEnvelope(r io.Reader) (envelope, error) {
	var env envelope
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&env); err != nil {
		return envelope{}, services.Wrap(services.ErrValidation, "host", "decode request", "invalid request JSON", err)
	}
	env.Rule = strings.ToLower(strings.TrimSpace(env.Rule))
	if env.Rule == "" {
		return envelope{}, services.Wrap(services.ErrValidation, "host", "decode request", "request is missing \"rule\"", nil)
	}
	return env, nil
}

// DefaultConvention returns the response shape the host expects for kind.
func DefaultConvention(kind rules.Kind) Convention {
	if kind == rules.KindOrder {
		return ConventionPorts
	}
	return ConventionFlag
}

// probeFrom decodes the host's ffprobe data. Absent, null, or undecodable
// data all yield nil so each rule applies its missing-data policy.
func probeFrom(raw json.RawMessage) (*ffprobe.Result, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	result, err := ffprobe.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func parseConvention(value Convention) (Convention, bool, error) {
	switch Convention(strings.ToLower(strings.TrimSpace(string(value)))) {
	case "":
		return "", false, nil
	case ConventionFlag:
		return ConventionFlag, true, nil
	case ConventionPorts:
		return ConventionPorts, true, nil
	default:
		return "", false, services.Wrap(services.ErrValidation, "host", "decode request", fmt.Sprintf("unknown convention %q", value), nil)
	}
}
