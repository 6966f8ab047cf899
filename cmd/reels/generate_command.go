package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/btccrack27/ai-reels/internal/api"
)

// generateInput carries the union of generator flags. Each generator reads
// only the fields its spec enables.
type generateInput struct {
	prompt   string
	context  string
	script   string
	niche    string
	duration int
	noEmojis bool
}

// generatedContent is the kind-independent shape every generator reduces to:
// enough to cache, export, and render the result.
type generatedContent struct {
	ID      string
	Kind    api.ContentKind
	Prompt  string
	Preview string
	Payload any
	Render  func(io.Writer)
}

// generatorSpec describes one content generator. All seven subcommands are
// built from this table by the same builder; adding a generator means adding
// a row, not a command.
type generatorSpec struct {
	kind        api.ContentKind
	short       string
	hasDuration bool
	hasScript   bool
	hasEmojis   bool
	hasNiche    bool
	run         func(ctx context.Context, client *api.Client, in generateInput) (*generatedContent, error)
}

func generatorSpecs() []generatorSpec {
	return []generatorSpec{
		{
			kind:  api.KindHook,
			short: "Generate ten scroll-stopping opening lines",
			run: func(ctx context.Context, client *api.Client, in generateInput) (*generatedContent, error) {
				res, err := client.GenerateHook(ctx, api.HookRequest{Prompt: in.prompt, Context: in.context})
				if err != nil {
					return nil, err
				}
				preview := ""
				if len(res.Hooks) > 0 {
					preview = res.Hooks[0]
				}
				return &generatedContent{
					ID: res.ID, Kind: api.KindHook, Prompt: in.prompt, Preview: preview, Payload: res,
					Render: func(w io.Writer) { renderHooks(w, res) },
				}, nil
			},
		},
		{
			kind:        api.KindScript,
			short:       "Generate a scene-by-scene video script",
			hasDuration: true,
			run: func(ctx context.Context, client *api.Client, in generateInput) (*generatedContent, error) {
				res, err := client.GenerateScript(ctx, api.ScriptRequest{
					Prompt: in.prompt, Context: in.context, DurationSeconds: in.duration,
				})
				if err != nil {
					return nil, err
				}
				preview := ""
				if len(res.Scenes) > 0 {
					preview = res.Scenes[0].Text
				}
				return &generatedContent{
					ID: res.ID, Kind: api.KindScript, Prompt: in.prompt, Preview: preview, Payload: res,
					Render: func(w io.Writer) { renderScript(w, res) },
				}, nil
			},
		},
		{
			kind:      api.KindShotlist,
			short:     "Generate an ordered shot list",
			hasScript: true,
			run: func(ctx context.Context, client *api.Client, in generateInput) (*generatedContent, error) {
				res, err := client.GenerateShotlist(ctx, api.ShotlistRequest{
					Prompt: in.prompt, Context: in.context, Script: in.script,
				})
				if err != nil {
					return nil, err
				}
				preview := ""
				if len(res.Shots) > 0 {
					preview = res.Shots[0]
				}
				return &generatedContent{
					ID: res.ID, Kind: api.KindShotlist, Prompt: in.prompt, Preview: preview, Payload: res,
					Render: func(w io.Writer) { renderShotlist(w, res) },
				}, nil
			},
		},
		{
			kind:      api.KindVoiceover,
			short:     "Generate narration text with a duration estimate",
			hasScript: true,
			run: func(ctx context.Context, client *api.Client, in generateInput) (*generatedContent, error) {
				res, err := client.GenerateVoiceover(ctx, api.VoiceoverRequest{
					Prompt: in.prompt, Context: in.context, Script: in.script,
				})
				if err != nil {
					return nil, err
				}
				return &generatedContent{
					ID: res.ID, Kind: api.KindVoiceover, Prompt: in.prompt, Preview: firstLine(res.Text), Payload: res,
					Render: func(w io.Writer) { renderVoiceover(w, res) },
				}, nil
			},
		},
		{
			kind:      api.KindCaption,
			short:     "Generate a caption with hashtags",
			hasEmojis: true,
			run: func(ctx context.Context, client *api.Client, in generateInput) (*generatedContent, error) {
				req := api.CaptionRequest{Prompt: in.prompt, Context: in.context}
				if in.noEmojis {
					off := false
					req.IncludeEmojis = &off
				}
				res, err := client.GenerateCaption(ctx, req)
				if err != nil {
					return nil, err
				}
				return &generatedContent{
					ID: res.ID, Kind: api.KindCaption, Prompt: in.prompt, Preview: firstLine(res.Caption), Payload: res,
					Render: func(w io.Writer) { renderCaption(w, res) },
				}, nil
			},
		},
		{
			kind:  api.KindBRoll,
			short: "Generate B-roll footage ideas",
			run: func(ctx context.Context, client *api.Client, in generateInput) (*generatedContent, error) {
				res, err := client.GenerateBRoll(ctx, api.BRollRequest{Prompt: in.prompt, Context: in.context})
				if err != nil {
					return nil, err
				}
				preview := ""
				if len(res.Ideas) > 0 {
					preview = res.Ideas[0]
				}
				return &generatedContent{
					ID: res.ID, Kind: api.KindBRoll, Prompt: in.prompt, Preview: preview, Payload: res,
					Render: func(w io.Writer) { renderBRoll(w, res) },
				}, nil
			},
		},
		{
			kind:     api.KindCalendar,
			short:    "Generate a 30-day content calendar",
			hasNiche: true,
			run: func(ctx context.Context, client *api.Client, in generateInput) (*generatedContent, error) {
				res, err := client.GenerateCalendar(ctx, api.CalendarRequest{
					Niche: in.niche, Prompt: in.prompt, Context: in.context,
				})
				if err != nil {
					return nil, err
				}
				preview := ""
				if len(res.Days) > 0 {
					preview = res.Days[0].Hook
				}
				return &generatedContent{
					ID: res.ID, Kind: api.KindCalendar, Prompt: in.prompt, Preview: preview, Payload: res,
					Render: func(w io.Writer) { renderCalendar(w, res) },
				}, nil
			},
		},
	}
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate short-form video content",
	}
	for _, spec := range generatorSpecs() {
		generateCmd.AddCommand(newGeneratorCommand(ctx, spec))
	}
	return generateCmd
}

func newGeneratorCommand(ctx *commandContext, spec generatorSpec) *cobra.Command {
	var in generateInput
	var asJSON, exportPDF bool

	cmd := &cobra.Command{
		Use:   string(spec.kind),
		Short: spec.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.prompt = strings.TrimSpace(in.prompt)
			if in.prompt == "" {
				return errors.New("--prompt is required")
			}
			if spec.hasDuration && in.duration != 0 {
				switch in.duration {
				case 10, 15, 20:
				default:
					return fmt.Errorf("unsupported duration %d (choose 10, 15, or 20 seconds)", in.duration)
				}
			}

			client, err := ctx.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Generating %s...\n", spec.kind)
			content, err := spec.run(cmd.Context(), client, in)
			if err != nil {
				return fmt.Errorf("generate %s: %s", spec.kind, api.Detail(err, "Generation failed"))
			}

			cacheGenerated(ctx, cmd, content)

			if asJSON {
				if err := writeJSON(cmd, content.Payload); err != nil {
					return err
				}
			} else {
				content.Render(cmd.OutOrStdout())
				if content.ID != "" && !exportPDF {
					fmt.Fprintf(cmd.OutOrStdout(), "Export as PDF with: reels export %s\n", content.ID)
				}
			}

			if exportPDF {
				path, err := exportContent(ctx, cmd.Context(), client, content.Kind, content.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved PDF to %s\n", path)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&in.prompt, "prompt", "p", "", "What the video is about")
	flags.StringVar(&in.context, "context", "", "Extra context for the generator (audience, tone, platform)")
	if spec.hasDuration {
		flags.IntVarP(&in.duration, "duration", "d", 0, "Target length in seconds: 10, 15, or 20 (server default 15)")
	}
	if spec.hasScript {
		flags.StringVar(&in.script, "script", "", "Existing script to derive from")
	}
	if spec.hasEmojis {
		flags.BoolVar(&in.noEmojis, "no-emojis", false, "Generate the caption without emojis")
	}
	if spec.hasNiche {
		flags.StringVar(&in.niche, "niche", "", "Content niche (falls back to the prompt)")
	}
	flags.BoolVar(&asJSON, "json", false, "Emit the raw result as JSON")
	flags.BoolVar(&exportPDF, "export", false, "Also export the result as a PDF")

	return cmd
}

// cacheGenerated records the result in the local history cache. Cache
// failures are logged, never surfaced: the generation already succeeded.
func cacheGenerated(ctx *commandContext, cmd *cobra.Command, content *generatedContent) {
	if content.ID == "" {
		return
	}
	store, err := ctx.ensureHistoryStore()
	if err != nil {
		ctx.ensureLogger().Warn("history cache unavailable", "error", err)
		return
	}
	err = store.Record(cmd.Context(), content.ID, content.Kind, content.Prompt, content.Preview, content.Payload, time.Now().UTC())
	if err != nil {
		ctx.ensureLogger().Warn("record generated content", "error", err)
	}
}

func exportContent(cmdCtx *commandContext, ctx context.Context, client *api.Client, kind api.ContentKind, contentID string) (string, error) {
	data, err := client.ExportPDF(ctx, contentID)
	if err != nil {
		return "", fmt.Errorf("export pdf: %s", api.Detail(err, "PDF export failed"))
	}
	writer, err := cmdCtx.exportWriter()
	if err != nil {
		return "", err
	}
	path, err := writer.Save(kind, contentID, data)
	if err != nil {
		return "", err
	}
	return path, nil
}

func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return text
}
