// Package main is the entry point for Corridor9.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"chosenoffset.com/corridor9/internal/audio"
	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/game"
	"chosenoffset.com/corridor9/internal/input"
	"chosenoffset.com/corridor9/internal/render"
	ebitenrender "chosenoffset.com/corridor9/internal/render/ebiten"
	termrender "chosenoffset.com/corridor9/internal/render/term"
	"chosenoffset.com/corridor9/internal/telemetry"
	"chosenoffset.com/corridor9/internal/world"
)

func main() {
	// Any panic below lands here: log it with a stack and exit nonzero
	// instead of dumping a raw crash.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Fatal: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	display := flag.String("display", "window", "render backend: window or terminal")
	configPath := flag.String("config", "corridor9.json", "path to the config file")
	debugOverlay := flag.Bool("debug", false, "show the debug overlay")
	mute := flag.Bool("mute", false, "disable movement sound cues")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	grid, err := world.NewGrid(world.ArenaLayout)
	if err != nil {
		log.Fatalf("Failed to build the arena: %v", err)
	}

	var cues game.Cues
	if !*mute {
		feedback, err := audio.NewFeedback()
		if err != nil {
			// Non-fatal, the game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		cues = feedback
	}

	var src input.Source
	var engine render.Engine
	switch *display {
	case "window":
		src = ebitenrender.NewInput()
		engine = ebitenrender.NewEngine(*debugOverlay)
	case "terminal":
		in := termrender.NewInput()
		src = in
		engine = termrender.NewEngine(in, *debugOverlay)
	default:
		log.Fatalf("Unknown display %q, want window or terminal", *display)
	}

	session, err := game.NewSession(cfg, grid, src, cues)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Corridor9")
	engine.SetWindowResizable(false)

	tracer := telemetry.Tracer("session")
	_, span := tracer.Start(ctx, "session.run")
	span.SetAttributes(
		attribute.String("session_id", uuid.New().String()),
		attribute.String("display", *display),
		attribute.Int("rays", cfg.NumRays),
		attribute.Int("grid_rows", grid.Rows()),
		attribute.Int("grid_cols", grid.Cols()),
	)

	log.Println("Starting game...")
	runErr := engine.RunGame(session)

	swept, skipped := session.Stats()
	span.SetAttributes(
		attribute.Int64("frames_swept", int64(swept)),
		attribute.Int64("frames_skipped", int64(skipped)),
	)
	span.End()

	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
	log.Printf("Session over: swept %d frames, skipped %d", swept, skipped)
}
