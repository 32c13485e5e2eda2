// README: Form CLI; collects trip details, submits them once and prints the plan.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"travelplanner/internal/client"
	"travelplanner/internal/config"
	"travelplanner/internal/maps"
)

func main() {
	destination := flag.String("destination", "", "where you want to go, e.g. \"Paris, France\"")
	duration := flag.Int("duration", 5, "trip length in days (1-30)")
	budget := flag.String("budget", "Moderate", "Budget-friendly, Moderate or Luxury")
	interests := flag.String("interests", "", "comma separated interests, e.g. \"history,food\"")
	mapPath := flag.String("map", "", "write a static map PNG of the plan's locations to this path")
	flag.Parse()

	config.LoadDotEnv()
	cfg := config.LoadClient()

	form := client.Form{
		Destination: *destination,
		Duration:    *duration,
		Budget:      *budget,
		Interests:   client.ParseInterests(*interests),
	}
	if err := form.Validate(); err != nil {
		_ = client.RenderWarning(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Generating a %d-day plan for %s...\n\n", *duration, form.Destination)

	ctx := context.Background()
	outcome := client.New(cfg.BaseURL, cfg.Timeout).Submit(ctx, form.Request())
	if err := client.Render(os.Stdout, outcome); err != nil {
		log.Fatal(err)
	}
	if outcome.Kind != client.OutcomeSuccess {
		os.Exit(1)
	}

	if *mapPath == "" || len(outcome.Plan.Locations) == 0 {
		return
	}
	if cfg.MapsAPIKey == "" {
		log.Printf("GOOGLE_MAPS_API_KEY not set; skipping map")
		return
	}
	if err := writeMap(ctx, cfg.MapsAPIKey, *mapPath, outcome); err != nil {
		log.Printf("map: %v", err)
		return
	}
	fmt.Printf("\nMap written to %s\n", *mapPath)
}

func writeMap(ctx context.Context, apiKey, path string, outcome client.Outcome) error {
	svc, err := maps.NewStaticMapService(apiKey)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svc.Render(ctx, outcome.Plan.Locations, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
