package main

import (
	"context"
	"fmt"
	"os"

	"tasker/internal/auth"
	"tasker/internal/cli"
	"tasker/internal/config"
	"tasker/internal/domain"
	"tasker/internal/location"
	"tasker/internal/store"
	"tasker/internal/theme"
	"tasker/internal/weather"
)

func main() {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	factory := NewStorageFactory(getEnvironment(), cfg)
	kv, err := factory.CreateStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating storage: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	client := weather.NewHTTPClient(cfg.Weather)

	// Fixed coordinates stand in for a device position source; without
	// them the resolver goes straight to the IP fallback
	var geo location.Geolocator
	if cfg.HasStaticLocation() {
		geo = location.StaticGeolocator{
			Coords: domain.Coordinates{
				Latitude:  *cfg.Location.Latitude,
				Longitude: *cfg.Location.Longitude,
			},
		}
	}
	ip := location.GeolocatorFunc(func(ctx context.Context) (domain.Coordinates, error) {
		loc, err := client.LocationByIP(ctx)
		if err != nil {
			return domain.Coordinates{}, err
		}
		return domain.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}, nil
	})
	resolver := location.NewResolver(kv, geo, ip, cfg.Location.GeolocationTimeout)

	ctx := context.Background()

	tasks, err := store.New(ctx, kv, client, resolver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tasks: %v\n", err)
		os.Exit(1)
	}

	session, err := auth.NewStore(ctx, kv, auth.NewDemoProvider())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
		os.Exit(1)
	}

	themes, err := theme.NewStore(ctx, kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading theme: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(tasks, session, themes)
	root := cli.NewRootCommand(app, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
