package host

import "streamgate/internal/rules"

// FlagResponse is the filter calling convention.
type FlagResponse struct {
	ProcessFile bool   `json:"processFile"`
	InfoLog     string `json:"infoLog"`
}

// PortsResponse is the router calling convention. ProcessFile is always
// false; the host follows Output instead.
type PortsResponse struct {
	ProcessFile bool   `json:"processFile"`
	Preset      string `json:"preset"`
	Container   string `json:"container"`
	InfoLog     string `json:"infoLog"`
	Output      int    `json:"output"`
}

// CopyResponse reports the file the host should continue with.
type CopyResponse struct {
	OutputFile   string `json:"outputFile"`
	OutputNumber int    `json:"outputNumber"`
	Skipped      bool   `json:"skipped,omitempty"`
}

// Result is an evaluated decision plus the shape to answer in.
type Result struct {
	Decision   rules.Decision
	Convention Convention
}

// Body returns the JSON value for the host.
func (r Result) Body() any {
	if r.Convention == ConventionPorts {
		return PortsResponse{
			InfoLog: r.Decision.Log(),
			Output:  int(r.Decision.Output()),
		}
	}
	return FlagResponse{
		ProcessFile: r.Decision.Proceed,
		InfoLog:     r.Decision.Log(),
	}
}
