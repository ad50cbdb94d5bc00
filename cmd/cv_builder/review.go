package main

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/logger"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/outbound"
	"github.com/jonathan/cv-builder/internal/panels"
	"github.com/jonathan/cv-builder/internal/server"
	"github.com/jonathan/cv-builder/internal/server/ratelimit"
	"github.com/jonathan/cv-builder/internal/types"
)

var (
	reviewInputFile  string
	reviewOutputFile string
	reviewTarget     string
	reviewService    string
	reviewApply      bool
	reviewEmbedded   bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Ask the AI reviewer to improve the summary or a section",
	Long: "Sends the summary or a section of a CvData file to /api/ai/review-section and prints the suggestions. " +
		"With --apply the suggestions are written back and the updated document is output. " +
		"By default an embedded server answers the request; use --embedded=false to call client.endpoint.",
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewInputFile, "in", "i", "", "Path to CvData JSON file (required)")
	reviewCmd.Flags().StringVarP(&reviewOutputFile, "out", "o", "", "Path to output CvData JSON file when applying (default stdout)")
	reviewCmd.Flags().StringVarP(&reviewTarget, "target", "t", panels.SummaryTarget, "\"summary\" or a section id or name")
	reviewCmd.Flags().StringVar(&reviewService, "service", string(types.ServiceClaude), "AI service: claude, openai or gemini")
	reviewCmd.Flags().BoolVar(&reviewApply, "apply", false, "Apply the suggestions and output the updated document")
	reviewCmd.Flags().BoolVar(&reviewEmbedded, "embedded", true, "Serve the request from an embedded server")
	mustRequire(reviewCmd, "in")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	cv, err := readDocument(reviewInputFile)
	if err != nil {
		return err
	}
	target, err := resolveTarget(cv, reviewTarget)
	if err != nil {
		return err
	}

	store := document.NewStore(cv, document.WithLogger(logger.Logger))
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	endpoint := cfg.Client.Endpoint
	if reviewEmbedded {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to start embedded server: %w", err)
		}
		srv := server.New(server.Config{
			Store:     store,
			Logger:    logger.Logger,
			RateLimit: &ratelimit.Config{Enabled: false},
		})
		g.Go(func() error { return srv.Serve(gctx, ln) })
		endpoint = "http://" + ln.Addr().String()
	}

	resp, reviewErr := review(ctx, store, outbound.New(endpoint, outbound.WithTimeout(cfg.Client.Timeout)), target)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	if reviewErr != nil {
		return reviewErr
	}

	observability.NewPrinter(cmd.ErrOrStderr()).PrintReview(&resp)
	if !reviewApply {
		return nil
	}
	return writeJSON(cmd, reviewOutputFile, store.Snapshot())
}

func review(ctx context.Context, store *document.Store, client *outbound.Client, target string) (types.ReviewResponse, error) {
	panel := panels.NewRevisePanel(store, client)
	defer panel.Close()

	if err := panel.UseService(types.AIService(reviewService)); err != nil {
		return types.ReviewResponse{}, err
	}
	panel.Select(target)

	resp, err := panel.Review(ctx)
	if err != nil {
		if msg := panel.ErrorMessage(); msg != "" {
			return types.ReviewResponse{}, fmt.Errorf("%s: %w", msg, err)
		}
		return types.ReviewResponse{}, err
	}
	if reviewApply {
		if err := panel.Apply(); err != nil {
			return types.ReviewResponse{}, err
		}
	}
	return resp, nil
}

// resolveTarget maps "summary", a section id or a section name to a review target
func resolveTarget(cv types.CvData, target string) (string, error) {
	if target == "" || target == panels.SummaryTarget {
		return panels.SummaryTarget, nil
	}
	for _, section := range cv.Sections {
		if section.ID == target || strings.EqualFold(section.Name, target) {
			return section.ID, nil
		}
	}
	return "", fmt.Errorf("section %q not found", target)
}
