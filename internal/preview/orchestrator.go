package preview

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/krivenkov/pdfpeek/internal/cache"
	"github.com/krivenkov/pdfpeek/internal/pdftools"
	"github.com/krivenkov/pdfpeek/internal/scratch"
)

// Outcome is the terminal state of a preview request.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRenderFailure
	OutcomeMissingDependency
	OutcomeNonPDF
)

// Result is what a preview request produces: display lines and, on success,
// a thumbnail path that survives the request (the cached copy).
type Result struct {
	Outcome Outcome
	Lines   []string
	Image   string
}

// Options configures an Orchestrator. Zero values select the real
// environment: exec-based probing and running, the OS filesystem, the
// system temp directory and the default render settings.
type Options struct {
	Prober     pdftools.Prober
	Runner     pdftools.Runner
	FileSystem scratch.FileSystem
	Scratch    *scratch.Manager
	Thumbnails *cache.Manager // optional; nil disables caching
	Logger     *slog.Logger

	Rasterizer    string // tool name or explicit path; defaults to pdftoppm
	InfoTool      string // defaults to pdfinfo
	ScaleWidth    int
	RenderTimeout time.Duration // bounded wait for the rasterizer; 0 disables
}

// Orchestrator drives one preview request from path to display lines.
// Requests are independent; concurrent previews only share the filesystem
// namespace, which unique scratch directories keep conflict-free.
type Orchestrator struct {
	opts Options
}

// New creates an orchestrator, filling in real-environment defaults.
func New(opts Options) *Orchestrator {
	if opts.Prober == nil {
		opts.Prober = pdftools.ExecProber{}
	}
	if opts.Runner == nil {
		opts.Runner = pdftools.ExecRunner{}
	}
	if opts.FileSystem == nil {
		opts.FileSystem = scratch.NewOSFileSystem()
	}
	if opts.Scratch == nil {
		opts.Scratch = scratch.NewManager(opts.FileSystem, "", opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Rasterizer == "" {
		opts.Rasterizer = pdftools.RasterizerName
	}
	if opts.InfoTool == "" {
		opts.InfoTool = pdftools.InfoToolName
	}
	if opts.ScaleWidth <= 0 {
		opts.ScaleWidth = pdftools.DefaultScaleWidth
	}
	return &Orchestrator{opts: opts}
}

// Preview runs one full preview cycle for path. It never returns an error:
// every failure mode degrades to an informational block. No subprocess is
// spawned for non-PDF paths, and a scratch directory created for a render is
// deleted before returning on every branch.
func (o *Orchestrator) Preview(ctx context.Context, path string) Result {
	req := NewRequest(path)
	logger := o.opts.Logger.With("file", req.Name)

	if !req.IsPDF() {
		return Result{Outcome: OutcomeNonPDF, Lines: NonPDFBlock(req.Name, req.Ext)}
	}

	// Probe fresh on every request; a cached answer could mask a tool that
	// was installed or removed since the last preview. The probe targets the
	// configured tool names so an explicit path is what gets checked.
	deps := pdftools.Check(o.opts.Prober, o.opts.Rasterizer, o.opts.InfoTool)
	if !deps.All() {
		logger.DebugContext(ctx, "preview dependencies missing",
			"rasterizer", deps.Rasterizer,
			"info_tool", deps.InfoTool,
		)
		return Result{Outcome: OutcomeMissingDependency, Lines: FailureBlock(req.Name, deps)}
	}

	key := o.thumbnailKey(req.Abs)
	if key != "" {
		if cached, ok := o.opts.Thumbnails.Get(key); ok {
			logger.DebugContext(ctx, "thumbnail cache hit", "image", cached)
			meta := o.metadataLines(ctx, req.Abs)
			return Result{
				Outcome: OutcomeSuccess,
				Lines:   SuccessBlock(req.Name, req.Abs, cached, meta),
				Image:   cached,
			}
		}
	}

	dir, err := o.opts.Scratch.Create()
	if err != nil {
		logger.WarnContext(ctx, "failed to create scratch directory", "error", err)
		return Result{Outcome: OutcomeRenderFailure, Lines: FailureBlock(req.Name, deps)}
	}
	defer o.opts.Scratch.Remove(dir)

	args, expectedOutput := pdftools.BuildRasterizeArgs(req.Abs, dir, o.opts.ScaleWidth)

	runCtx := ctx
	if o.opts.RenderTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, o.opts.RenderTimeout)
		defer cancel()
	}

	exitCode, _, runErr := o.opts.Runner.Run(runCtx, o.opts.Rasterizer, args...)
	outputExists := false
	if _, statErr := o.opts.FileSystem.Stat(expectedOutput); statErr == nil {
		outputExists = true
	}

	if runErr != nil || exitCode != 0 || !outputExists {
		logger.DebugContext(ctx, "rasterizer failed",
			"exit_code", exitCode,
			"output_exists", outputExists,
			"error", runErr,
		)
		return Result{Outcome: OutcomeRenderFailure, Lines: FailureBlock(req.Name, deps)}
	}

	meta := o.metadataLines(ctx, req.Abs)

	image := expectedOutput
	if key != "" {
		if cached, cacheErr := o.opts.Thumbnails.Put(key, expectedOutput); cacheErr == nil {
			image = cached
		} else {
			logger.WarnContext(ctx, "failed to cache thumbnail", "error", cacheErr)
			// The scratch copy is about to be deleted with its directory.
			image = ""
		}
	} else {
		image = ""
	}

	// Show the cached copy when there is one; the scratch output is deleted
	// with its directory before the caller ever sees these lines.
	display := expectedOutput
	if image != "" {
		display = image
	}
	return Result{
		Outcome: OutcomeSuccess,
		Lines:   SuccessBlock(req.Name, req.Abs, display, meta),
		Image:   image,
	}
}

// CheckDependencies reports current availability of the configured tools.
func (o *Orchestrator) CheckDependencies() pdftools.Dependencies {
	return pdftools.Check(o.opts.Prober, o.opts.Rasterizer, o.opts.InfoTool)
}

// SweepCache removes stale cached thumbnails, if caching is enabled.
func (o *Orchestrator) SweepCache(ctx context.Context) {
	if o.opts.Thumbnails == nil {
		return
	}
	if _, err := o.opts.Thumbnails.Sweep(ctx); err != nil {
		o.opts.Logger.WarnContext(ctx, "cache sweep failed", "error", err)
	}
}

func (o *Orchestrator) thumbnailKey(absPath string) string {
	if o.opts.Thumbnails == nil {
		return ""
	}
	info, err := o.opts.FileSystem.Stat(absPath)
	if err != nil {
		return ""
	}
	return cache.Key(absPath, info.Size(), info.ModTime())
}

// metadataLines fetches pdfinfo output. When the tool fails, the placeholder
// is kept and a pure-Go page count is appended if the document parses.
func (o *Orchestrator) metadataLines(ctx context.Context, absPath string) []string {
	lines := pdftools.InfoLines(ctx, o.opts.Runner, o.opts.InfoTool, absPath)
	if len(lines) == 1 && lines[0] == pdftools.InfoUnavailable {
		if pages, err := pdftools.PageCount(absPath); err == nil {
			lines = append(lines, "Pages: "+strconv.Itoa(pages))
		}
	}
	return lines
}
