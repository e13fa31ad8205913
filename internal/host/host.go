package host

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"streamgate/internal/config"
	"streamgate/internal/logging"
	"streamgate/internal/relocate"
	"streamgate/internal/rules"
	"streamgate/internal/services"
)

// Adapter answers host requests using cfg for omitted inputs.
type Adapter struct {
	cfg    *config.Config
	logger *slog.Logger
	copier *relocate.Copier
	newID  func() string
}

// New constructs an Adapter. A nil cfg uses config.Default().
func New(cfg *config.Config, logger *slog.Logger) *Adapter {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return &Adapter{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "host"),
		copier: relocate.New(relocate.Options{
			BufferSize: cfg.BufferBytes(),
			Verify:     cfg.Relocate.Verify,
			Logger:     logger,
		}),
		newID: uuid.NewString,
	}
}

// Invoke decodes one request from r, performs it, and writes the JSON
// response to w.
func (a *Adapter) Invoke(ctx context.Context, r io.Reader, w io.Writer) error {
	env, err := decodeEnvelope(r)
	if err != nil {
		return err
	}
	ctx = services.WithRequestID(ctx, a.newID())

	var body any
	switch env.Rule {
	case OpCopy, OpCopyWorkDir:
		resp, err := a.copy(ctx, env.Rule, env.CopyRequest)
		if err != nil {
			return err
		}
		body = resp
	default:
		result, err := a.Evaluate(ctx, env.Request)
		if err != nil {
			return err
		}
		body = result.Body()
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(body); err != nil {
		return services.Wrap(services.ErrIO, "host", "encode response", "write response", err)
	}
	return nil
}

// Evaluate runs the rule named in req.
func (a *Adapter) Evaluate(ctx context.Context, req Request) (Result, error) {
	kind, err := rules.ParseKind(strings.ToLower(strings.TrimSpace(req.Rule)))
	if err != nil {
		return Result{}, services.Wrap(services.ErrValidation, "host", "evaluate", err.Error(), nil)
	}
	convention, overridden, err := parseConvention(req.Convention)
	if err != nil {
		return Result{}, err
	}
	if !overridden {
		convention = DefaultConvention(kind)
	}

	ctx = services.WithRule(ctx, string(kind))
	if req.File != "" {
		ctx = services.WithFile(ctx, req.File)
	}
	logger := logging.WithContext(ctx, a.logger)

	probe, err := probeFrom(req.FFProbeData)
	if err != nil {
		logger.Warn("ffprobe data could not be decoded; treating as missing", logging.Error(err))
	}

	rule, err := a.BuildRule(kind, req.Inputs)
	if err != nil {
		return Result{}, err
	}
	decision, err := rules.Evaluate(rule, rules.Input{File: req.File, Probe: probe})
	if err != nil {
		return Result{}, services.Wrap(services.ErrValidation, "host", "evaluate", "rule evaluation failed", err)
	}

	for _, entry := range decision.Entries {
		logger.Debug(entry.Message, logging.Args(entry.Attrs...)...)
	}
	attrs := logging.DecisionAttrs(string(kind), decision.Result(), decision.Reason)
	if kind == rules.KindOrder {
		attrs = append(attrs, logging.Int("output", int(decision.Output())))
	}
	logger.Info("rule decision", logging.Args(attrs...)...)

	return Result{Decision: decision, Convention: convention}, nil
}

// BuildRule starts from the configured rule of the given family and
// overlays every input the host supplied.
func (a *Adapter) BuildRule(kind rules.Kind, in Inputs) (rules.Rule, error) {
	rule, err := a.cfg.Rule(kind)
	if err != nil {
		return rules.Rule{}, services.Wrap(services.ErrValidation, "host", "build rule", string(kind), err)
	}
	if in.LanguagesToCheck != nil {
		rule.Compliance.Languages = rules.ParseList(*in.LanguagesToCheck)
	}
	if in.TargetCodec != nil {
		rule.Compliance.TargetCodec = *in.TargetCodec
	}
	if in.TargetChannels != nil {
		rule.Compliance.TargetChannels = *in.TargetChannels
	}
	if in.PreferredAudioLanguages != nil {
		rule.Order.PreferredLanguages = rules.ParseList(*in.PreferredAudioLanguages)
	}
	if in.UnwantedVideoCodecs != nil {
		rule.Codecs.Unwanted = rules.ParseList(*in.UnwantedVideoCodecs)
	}
	return rule, nil
}

// Copy performs a copy-to-directory operation.
func (a *Adapter) Copy(ctx context.Context, req CopyRequest) (CopyResponse, error) {
	return a.copy(ctx, OpCopy, req)
}

// CopyToWorkDir performs a copy-to-working-directory operation.
func (a *Adapter) CopyToWorkDir(ctx context.Context, req CopyRequest) (CopyResponse, error) {
	return a.copy(ctx, OpCopyWorkDir, req)
}

func (a *Adapter) copy(ctx context.Context, op string, req CopyRequest) (CopyResponse, error) {
	ctx = services.WithRule(ctx, op)
	if req.InputFile != "" {
		ctx = services.WithFile(ctx, req.InputFile)
	}
	logger := logging.WithContext(ctx, a.logger)

	var (
		result relocate.Result
		err    error
	)
	switch op {
	case OpCopyWorkDir:
		workDir := strings.TrimSpace(req.WorkDir)
		if workDir == "" {
			workDir = a.cfg.Paths.WorkDir
		}
		result, err = a.copier.ToWorkDir(ctx, req.InputFile, workDir)
	default:
		outputDir := strings.TrimSpace(req.OutputDirectory)
		if outputDir == "" {
			outputDir = a.cfg.Relocate.OutputDir
		}
		libraryRoot := strings.TrimSpace(req.LibraryRoot)
		if libraryRoot == "" {
			libraryRoot = a.cfg.Relocate.LibraryRoot
		}
		result, err = a.copier.Copy(ctx, relocate.Request{
			Source:           req.InputFile,
			OriginalFile:     req.OriginalFile,
			LibraryRoot:      libraryRoot,
			OutputDir:        outputDir,
			KeepRelativePath: boolOr(req.KeepRelativePath, a.cfg.Relocate.KeepRelativePath),
			MakeWorkingFile:  boolOr(req.MakeWorkingFile, a.cfg.Relocate.MakeWorkingFile),
		})
	}
	if err != nil {
		logger.Error("copy failed", logging.Error(err))
		return CopyResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("copy decision",
		logging.String(logging.FieldDecisionType, op),
		logging.String("output_file", result.WorkingFile),
		logging.Bool("skipped", result.Skipped),
		logging.Int64("bytes", result.Bytes),
	)
	return CopyResponse{OutputFile: result.WorkingFile, OutputNumber: 1, Skipped: result.Skipped}, nil
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
