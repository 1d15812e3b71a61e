package setup

import (
	"context"

	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/felixgeelhaar/cornershape/internal/ports"
)

// Outcome is how a setup run ended.
type Outcome int

// Outcome constants.
const (
	OutcomeConfigured Outcome = iota
	OutcomeAlreadyConfigured
	OutcomeNotFound
	OutcomeManualRequired
	OutcomeFailed
	OutcomeRemoved
	OutcomeNotPresent
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeConfigured:
		return "configured"
	case OutcomeAlreadyConfigured:
		return "already-configured"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeManualRequired:
		return "manual-required"
	case OutcomeFailed:
		return "failed"
	case OutcomeRemoved:
		return "removed"
	case OutcomeNotPresent:
		return "not-present"
	default:
		return "unknown"
	}
}

// Result reports one run against one target file.
type Result struct {
	Target  ConfigFile
	Outcome Outcome
	Preset  preset.Preset
	// Content is the patched text; set on successful changes, written
	// to disk unless the run was a dry run.
	Content string
	DryRun  bool
	Err     error
}

// Success reports whether the run left the project in the wanted state.
func (r Result) Success() bool {
	switch r.Outcome {
	case OutcomeConfigured, OutcomeAlreadyConfigured, OutcomeRemoved, OutcomeNotPresent:
		return true
	default:
		return false
	}
}

// Chooser picks the preset to install. It is only called once the target
// is known to need patching.
type Chooser func(ctx context.Context) (preset.Preset, error)

// InstallRequest configures Service.Install.
type InstallRequest struct {
	Dir         string
	Mode        config.Mode
	Stylesheets []string
	// Choose defaults to preset.Default when nil.
	Choose Chooser
	DryRun bool
}

// UninstallRequest configures Service.Uninstall.
type UninstallRequest struct {
	Dir         string
	Mode        config.Mode
	Stylesheets []string
	DryRun      bool
}

// Service wires the plugin into a project and removes it again.
type Service struct {
	fs      ports.FileSystem
	locator *Locator
	logger  ports.Logger
}

// NewService creates a Service.
func NewService(fs ports.FileSystem, logger ports.Logger) *Service {
	return &Service{
		fs:      fs,
		locator: NewLocator(fs),
		logger:  logger,
	}
}

// Install locates the target, skips it when the plugin is already
// referenced, and otherwise patches it with the chosen preset.
func (s *Service) Install(ctx context.Context, req InstallRequest) Result {
	log := ports.LoggerFromContext(ctx, s.logger).With(ports.F("dir", req.Dir))

	target, err := s.resolveTarget(ctx, log, req.Dir, req.Mode, req.Stylesheets)
	if err != nil {
		log.Info(ctx, "no target file found", ports.Err(err))
		return Result{Outcome: OutcomeNotFound, Err: err}
	}
	log = log.With(ports.F("target", target.Path), ports.F("kind", target.Kind.String()))

	text, err := s.read(ctx, log, target)
	if err != nil {
		return Result{Target: target, Outcome: OutcomeFailed, Err: err}
	}

	if IsPresent(text) {
		log.Info(ctx, "plugin already configured")
		return Result{Target: target, Outcome: OutcomeAlreadyConfigured}
	}

	choose := req.Choose
	if choose == nil {
		choose = func(context.Context) (preset.Preset, error) { return preset.Default(), nil }
	}
	chosen, err := choose(ctx)
	if err != nil {
		log.Warn(ctx, "preset selection failed", ports.Err(err))
		return Result{Target: target, Outcome: OutcomeFailed, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return Result{Target: target, Outcome: OutcomeFailed, Preset: chosen, Err: err}
	}
	log.Debug(ctx, "preset chosen", ports.F("preset", chosen.Name))

	var (
		updated string
		ok      bool
	)
	switch target.Kind {
	case KindStylesheet:
		if chosen.V4Name == "" {
			err := config.NewInvalidPresetError(chosen.Shape, preset.V4Names).
				WithContext(target.Path).
				WithSuggestion("Tailwind v4 presets are fixed; pick one of " +
					"squircle, very-rounded, moderately-rounded, slightly-rounded, bevel, round, or run with --mode v3.")
			return Result{Target: target, Outcome: OutcomeFailed, Preset: chosen, Err: err}
		}
		updated, ok = InjectPluginDirective(text, PluginDirective(chosen.V4Name))
	default:
		updated, ok = PatchConfig(target.Name, text, chosen.Expression)
	}

	if !ok {
		log.Warn(ctx, "no insertion point found, manual setup required")
		return Result{
			Target:  target,
			Outcome: OutcomeManualRequired,
			Preset:  chosen,
			Err:     config.NewPluginsArrayNotFoundError(target.Path),
		}
	}

	if req.DryRun {
		return Result{Target: target, Outcome: OutcomeConfigured, Preset: chosen, Content: updated, DryRun: true}
	}

	if err := s.write(ctx, log, target, updated); err != nil {
		return Result{Target: target, Outcome: OutcomeFailed, Preset: chosen, Err: err}
	}

	log.Info(ctx, "plugin configured", ports.F("preset", chosen.Name))
	return Result{Target: target, Outcome: OutcomeConfigured, Preset: chosen, Content: updated}
}

// Uninstall removes the plugin from every target the mode covers: the
// config file, the stylesheet, or both. It returns one result per target
// found, or a single not-found result.
func (s *Service) Uninstall(ctx context.Context, req UninstallRequest) []Result {
	log := ports.LoggerFromContext(ctx, s.logger).With(ports.F("dir", req.Dir))

	var targets []ConfigFile
	if req.Mode != config.ModeV4 {
		if f, ok := s.locator.Locate(req.Dir); ok {
			targets = append(targets, f)
		}
	}
	if req.Mode != config.ModeV3 {
		if f, ok := s.locator.LocateStylesheet(req.Dir, req.Stylesheets...); ok {
			targets = append(targets, f)
		}
	}

	if len(targets) == 0 {
		err := s.notFoundError(req.Dir, req.Mode, 0)
		log.Info(ctx, "no target file found", ports.Err(err))
		return []Result{{Outcome: OutcomeNotFound, Err: err}}
	}

	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		results = append(results, s.uninstallOne(ctx, log, target, req.DryRun))
	}
	return results
}

func (s *Service) uninstallOne(ctx context.Context, log ports.Logger, target ConfigFile, dryRun bool) Result {
	log = log.With(ports.F("target", target.Path), ports.F("kind", target.Kind.String()))

	text, err := s.read(ctx, log, target)
	if err != nil {
		return Result{Target: target, Outcome: OutcomeFailed, Err: err}
	}
	if !IsPresent(text) {
		log.Debug(ctx, "plugin not referenced")
		return Result{Target: target, Outcome: OutcomeNotPresent}
	}

	var (
		updated string
		changed bool
	)
	if target.Kind == KindStylesheet {
		updated, changed = RemovePluginDirective(text)
	} else {
		updated, changed = RemovePlugin(text)
	}
	if !changed {
		log.Warn(ctx, "plugin referenced but no removable line found")
		return Result{
			Target:  target,
			Outcome: OutcomeManualRequired,
			Err: config.NewUserError(config.ErrCodeValidationFailed, "plugin reference could not be removed automatically").
				WithContext(target.Path).
				WithSuggestion("Remove the tailwindcss-corner-shape lines from the file by hand."),
		}
	}

	if dryRun {
		return Result{Target: target, Outcome: OutcomeRemoved, Content: updated, DryRun: true}
	}
	if err := s.write(ctx, log, target, updated); err != nil {
		return Result{Target: target, Outcome: OutcomeFailed, Err: err}
	}

	log.Info(ctx, "plugin removed")
	return Result{Target: target, Outcome: OutcomeRemoved, Content: updated}
}

// resolveTarget picks the file to patch. In auto mode the tailwindcss
// version from package.json decides which kind is tried first, and the
// other kind is the fallback.
func (s *Service) resolveTarget(ctx context.Context, log ports.Logger, dir string, mode config.Mode, stylesheets []string) (ConfigFile, error) {
	major := 0
	switch mode {
	case config.ModeV3:
		if f, ok := s.locator.Locate(dir); ok {
			return f, nil
		}
	case config.ModeV4:
		if f, ok := s.locator.LocateStylesheet(dir, stylesheets...); ok {
			return f, nil
		}
	default:
		major = DetectTailwindMajor(s.fs, dir)
		log.Debug(ctx, "detected tailwind version", ports.F("major", major))
		cfg, ok3 := s.locator.Locate(dir)
		sheet, ok4 := s.locator.LocateStylesheet(dir, stylesheets...)
		switch {
		case major >= 4 && ok4:
			return sheet, nil
		case ok3:
			return cfg, nil
		case ok4:
			return sheet, nil
		}
	}
	return ConfigFile{}, s.notFoundError(dir, mode, major)
}

func (s *Service) notFoundError(dir string, mode config.Mode, major int) error {
	if mode == config.ModeV4 || major >= 4 {
		return config.NewStylesheetNotFoundError(dir)
	}
	return config.NewConfigNotFoundError(dir)
}

func (s *Service) read(ctx context.Context, log ports.Logger, target ConfigFile) (string, error) {
	data, err := s.fs.ReadFile(target.Path)
	if err != nil {
		log.Error(ctx, "failed to read file", ports.Err(err))
		return "", config.NewFileReadError(target.Path, err)
	}
	return string(data), nil
}

func (s *Service) write(ctx context.Context, log ports.Logger, target ConfigFile, content string) error {
	perm := ports.DefaultFileMode
	if info, err := s.fs.GetFileInfo(target.Path); err == nil && info.Mode.Perm() != 0 {
		perm = info.Mode.Perm()
	}
	if err := s.fs.WriteFile(target.Path, []byte(content), perm); err != nil {
		log.Error(ctx, "failed to write file", ports.Err(err))
		return config.NewFileWriteError(target.Path, err)
	}
	return nil
}
