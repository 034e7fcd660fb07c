// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

// Command seed populates an empty database with a small demo campus tour
// and provides a helper for provisioning the admin credential.
//
// # Usage
//
//	seed                      # insert the demo scenes and hotspots
//	seed -hash-password=S3cret  # print a bcrypt hash for ADMIN_PASSWORD_HASH
//
// Seeding goes through the domain services so the demo data passes the
// same validation as API writes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nandaprasetyo/jelajah/internal/platform/config"
	"github.com/nandaprasetyo/jelajah/internal/platform/migration"
	pgstore "github.com/nandaprasetyo/jelajah/internal/platform/postgres"
	"github.com/nandaprasetyo/jelajah/internal/platform/sec"
	"github.com/nandaprasetyo/jelajah/internal/tour/hotspot"
	"github.com/nandaprasetyo/jelajah/internal/tour/scene"
	"github.com/nandaprasetyo/jelajah/pkg/date"
	"github.com/nandaprasetyo/jelajah/pkg/pointer"
)

func main() {
	hashPassword := flag.String("hash-password", "", "print a bcrypt hash for the given password and exit")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "jelajah-seed"))

	if *hashPassword != "" {
		hash, err := sec.HashPassword(*hashPassword)
		if err != nil {
			log.Error("hashing failed", slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("connect to postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		log.Error("run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	sceneRepository := scene.NewPostgresRepository(pool)
	sceneService := scene.NewService(sceneRepository, log)

	hotspotRepository := hotspot.NewPostgresRepository(pool)
	hotspotService := hotspot.NewService(hotspotRepository, sceneRepository, log)

	if err := seedTour(ctx, sceneService, hotspotService); err != nil {
		log.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("seeding complete")
}

// seedTour inserts a two-building demo campus: a featured lobby, a library
// on floor 2, and the MBZ CFS hall, linked into a walkable loop.
func seedTour(ctx context.Context, scenes *scene.Service, hotspots *hotspot.Service) error {
	published := date.New(2026, time.January, 12)

	lobi, err := scenes.CreateScene(ctx, scene.CreateInput{
		Title:         "Lobi Gedung Utama",
		Description:   "Pintu masuk utama kampus dengan meja resepsionis.",
		Building:      scene.BuildingUtama,
		Floor:         pointer.To(1),
		Location:      "Lantai 1, dekat pintu masuk barat",
		PublishedDate: published,
		PanoramaImage: "panoramas/lobi-gedung-utama.jpg",
		Thumbnail:     "thumbnails/lobi-gedung-utama.jpg",
		Author:        "Tim Humas",
		IsFeatured:    true,
	})
	if err != nil {
		return err
	}

	perpustakaan, err := scenes.CreateScene(ctx, scene.CreateInput{
		Title:            "Perpustakaan Pusat",
		Description:      "Ruang baca utama dengan koleksi referensi.",
		Building:         scene.BuildingUtama,
		Floor:            pointer.To(2),
		FloorDescription: "Lantai 2 - Area Akademik",
		Location:         "Lantai 2, sayap timur",
		PublishedDate:    published,
		PanoramaImage:    "panoramas/perpustakaan-pusat.jpg",
		Thumbnail:        "thumbnails/perpustakaan-pusat.jpg",
		Author:           "Tim Humas",
	})
	if err != nil {
		return err
	}

	aula, err := scenes.CreateScene(ctx, scene.CreateInput{
		Title:         "Aula Gedung MBZ CFS",
		Description:   "Aula serbaguna untuk seminar dan wisuda.",
		Building:      scene.BuildingMBZCFS,
		Floor:         pointer.To(1),
		Location:      "Lantai 1, gedung MBZ CFS",
		PublishedDate: published,
		PanoramaImage: "panoramas/aula-mbz-cfs.jpg",
		Thumbnail:     "thumbnails/aula-mbz-cfs.jpg",
		Author:        "Tim Humas",
		InitialYaw:    pointer.To(15.0),
	})
	if err != nil {
		return err
	}

	taman, err := scenes.CreateScene(ctx, scene.CreateInput{
		Title:         "Taman Tengah",
		Description:   "Area hijau di antara kedua gedung.",
		Building:      scene.BuildingUtama,
		Location:      "Halaman tengah kampus",
		PublishedDate: published,
		PanoramaImage: "panoramas/taman-tengah.jpg",
		Thumbnail:     "thumbnails/taman-tengah.jpg",
		Author:        "Tim Humas",
	})
	if err != nil {
		return err
	}

	edges := []hotspot.CreateInput{
		{
			FromSceneID: lobi.ID, ToSceneID: &perpustakaan.ID,
			Type: hotspot.TypeFloor, Pitch: 10, Yaw: 120,
			Text: "Naik ke Perpustakaan",
		},
		{
			FromSceneID: lobi.ID, ToSceneID: &taman.ID,
			Type: hotspot.TypeScene, Yaw: -60,
			Text: "Keluar ke Taman Tengah",
		},
		{
			FromSceneID: lobi.ID,
			Type: hotspot.TypeInfo, Pitch: -5, Yaw: 30,
			Text:            "Resepsionis",
			InfoDescription: "Meja layanan informasi, buka 07.30-16.00.",
		},
		{
			FromSceneID: perpustakaan.ID, ToSceneID: &lobi.ID,
			Type: hotspot.TypeFloor, Pitch: -10, Yaw: -150,
			Text: "Turun ke Lobi",
		},
		{
			FromSceneID: taman.ID, ToSceneID: &aula.ID,
			Type: hotspot.TypeScene, Yaw: 75,
			Text: "Masuk ke Aula MBZ CFS",
		},
		{
			FromSceneID: aula.ID, ToSceneID: &taman.ID,
			Type: hotspot.TypeScene, Yaw: -105,
			Text: "Kembali ke Taman",
		},
	}

	for _, edge := range edges {
		if _, err := hotspots.CreateHotspot(ctx, edge); err != nil {
			return err
		}
	}

	return nil
}
