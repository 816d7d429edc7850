// apicheck is a smoke check against a running back-office API: it reads the
// profile, pushes a round-trip update and lists the card, reporting each step.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"festProApi/apiclient"
)

func main() {
	baseURL := flag.String("url", "http://localhost:3001/api", "base URL of the API")
	timeout := flag.Duration("timeout", 30*time.Second, "overall check timeout")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := apiclient.New(*baseURL)
	checks := []struct {
		name string
		run  func(context.Context, *apiclient.Client) error
	}{
		{"health", checkHealth},
		{"get restaurant", checkGetRestaurant},
		{"put restaurant", checkPutRestaurant},
		{"get menu", checkGetMenu},
	}

	failed := 0
	for _, check := range checks {
		if err := check.run(ctx, client); err != nil {
			failed++
			fmt.Printf("%-16s FAIL  %v\n", check.name, err)
			continue
		}
		fmt.Printf("%-16s OK\n", check.name)
	}

	if failed > 0 {
		fmt.Printf("%d of %d checks failed\n", failed, len(checks))
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}

func checkHealth(ctx context.Context, client *apiclient.Client) error {
	return client.Health(ctx)
}

func checkGetRestaurant(ctx context.Context, client *apiclient.Client) error {
	restaurant, err := client.GetRestaurant(ctx)
	if err != nil {
		return err
	}
	if restaurant.Nom == "" {
		return fmt.Errorf("profile has no name")
	}
	return nil
}

// checkPutRestaurant fetches the current profile, resubmits it without its
// identity and metadata fields, and verifies the fields survive unchanged.
func checkPutRestaurant(ctx context.Context, client *apiclient.Client) error {
	current, err := client.GetRestaurant(ctx)
	if err != nil {
		return fmt.Errorf("fetch current profile: %w", err)
	}

	candidate := current
	candidate.ID = ""
	if candidate.Horaires.Midi == "" {
		candidate.Horaires.Midi = "12h00 - 14h30"
	}
	if candidate.Horaires.Soir == "" {
		candidate.Horaires.Soir = "19h00 - 22h30"
	}
	if candidate.Capacite.Midi == 0 {
		candidate.Capacite.Midi = 45
	}
	if candidate.Capacite.Soir == 0 {
		candidate.Capacite.Soir = 60
	}

	updated, err := client.UpdateRestaurant(ctx, candidate)
	if err != nil {
		return err
	}
	if updated.Nom != candidate.Nom {
		return fmt.Errorf("name did not round-trip: sent %q, got %q", candidate.Nom, updated.Nom)
	}
	if updated.Horaires != candidate.Horaires || updated.Capacite != candidate.Capacite {
		return fmt.Errorf("hours or capacity did not round-trip")
	}
	return nil
}

func checkGetMenu(ctx context.Context, client *apiclient.Client) error {
	items, err := client.GetMenu(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%-16s       %d item(s)\n", "", len(items))
	return nil
}
