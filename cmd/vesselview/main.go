// Package main is the entry point for the vessel viewer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"go.uber.org/zap"

	"github.com/vesselworks/vesselview/internal/config"
	"github.com/vesselworks/vesselview/internal/engine/interact"
	"github.com/vesselworks/vesselview/internal/engine/viewer"
	"github.com/vesselworks/vesselview/internal/logger"
	"github.com/vesselworks/vesselview/internal/vessel"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Vessel Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	doc := demoDocument(flag.Args())

	v, err := viewer.New(viewer.Config{
		Title:         "Vessel Viewer",
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		Fullscreen:    cfg.Graphics.Fullscreen,
		VSync:         cfg.Graphics.VSync,
		ShellSegments: cfg.Viewer.ShellSegments,
		ShellRows:     cfg.Viewer.ShellRows,
		HeadRows:      cfg.Viewer.HeadRows,
		Locks: interact.Locks{
			Nozzles: cfg.Viewer.LockNozzles,
			Lugs:    cfg.Viewer.LockLugs,
			Saddles: cfg.Viewer.LockSaddles,
			Decals:  cfg.Viewer.LockDecals,
		},
	}, doc)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// demoDocument builds a sample horizontal vessel. Extra command-line
// arguments are taken as decal image paths; without any, a generated
// placeholder label is used.
func demoDocument(imagePaths []string) *viewer.Document {
	doc := &viewer.Document{
		Vessel: vessel.Spec{
			ID:          2400,
			Length:      6000,
			HeadRatio:   2,
			Orientation: vessel.Horizontal,
		},
		Nozzles: []vessel.NozzleSpec{
			{Pos: 1200, Angle: 90, Bore: 150},
			{Pos: 4800, Angle: 90, Bore: 100},
			{Pos: 3000, Angle: 270, Bore: 200},
		},
		Lugs: []vessel.LugSpec{
			{Pos: 1800, Angle: 0, Width: 300, Height: 220, Thick: 30},
			{Pos: 4200, Angle: 0, Width: 300, Height: 220, Thick: 30},
		},
		Saddles: []vessel.SaddleSpec{
			{Pos: 1000},
			{Pos: 5000},
		},
		Images: make(map[int64]image.Image),
	}

	for i, path := range imagePaths {
		id := int64(100 + i)
		img, err := loadImage(path)
		if err != nil {
			logger.Warn("skipping decal image",
				zap.String("path", path), zap.Error(err))
			continue
		}
		doc.Images[id] = img
		doc.Decals = append(doc.Decals, vessel.DecalSpec{
			ID:     id,
			Pos:    2000 + 1500*float32(len(doc.Decals)),
			Angle:  45,
			ScaleW: 1,
			ScaleH: 1,
		})
	}

	if len(doc.Decals) == 0 {
		doc.Images[100] = placeholderLabel()
		doc.Decals = []vessel.DecalSpec{
			{ID: 100, Pos: 2500, Angle: 45, ScaleW: 1, ScaleH: 1},
		}
	}

	return doc
}

// loadImage decodes a PNG or JPEG decal image from disk.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// placeholderLabel draws a simple two-tone label so the decal pipeline has
// something to show without any input files.
func placeholderLabel() image.Image {
	const w, h = 256, 128
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	border := color.RGBA{R: 220, G: 150, B: 40, A: 255}
	fill := color.RGBA{R: 245, G: 240, B: 225, A: 255}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fill
			if x < 8 || x >= w-8 || y < 8 || y >= h-8 {
				c = border
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
