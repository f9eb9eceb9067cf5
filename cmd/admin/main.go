// Package main is a terminal admin panel for the dealership backend. It
// authenticates against the admin API and drives the inventory and contact
// inbox through the dashboard controller.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jrautos/go-dealer-backend/internal/dashboard"
	"github.com/jrautos/go-dealer-backend/internal/domain"
	"github.com/jrautos/go-dealer-backend/internal/i18n"
)

func main() {
	var baseURL string
	var lang string

	flag.StringVar(&baseURL, "url", envOr("DEALER_API_URL", "http://localhost:8080"), "backend base URL")
	flag.StringVar(&lang, "lang", envOr("DEALER_LANG", i18n.LangES), "interface language: es or en")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in := bufio.NewReader(os.Stdin)

	session := dashboard.NewSession()
	client := dashboard.NewClient(baseURL, session)
	ctrl := dashboard.NewController(client, session, func(v domain.Vehicle) bool {
		return promptYesNo(in, fmt.Sprintf("Delete %q (%s)?", v.Name, v.ID))
	})

	if err := ctrl.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for ctrl.State() == dashboard.StateUnauthenticated {
		password, err := promptLine(in, "Password: ")
		if err != nil {
			return
		}
		err = ctrl.Login(ctx, password)
		switch {
		case err == nil:
		case errors.Is(err, dashboard.ErrInvalidPassword):
			fmt.Println(i18n.T(lang, "login.invalid"))
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Connected. Type 'help' for commands.")
	runLoop(ctx, in, ctrl, client)
}

func runLoop(ctx context.Context, in *bufio.Reader, ctrl *dashboard.Controller, client *dashboard.Client) {
	for {
		line, err := promptLine(in, "> ")
		if err != nil {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "", "help":
			printHelp()
		case "list":
			printVehicles(ctrl.Vehicles())
		case "contacts":
			printContacts(ctrl.Contacts())
		case "add":
			if err := addVehicle(ctx, in, ctrl, client); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "toggle":
			if err := ctrl.ToggleAvailability(ctx, arg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "delete":
			if err := ctrl.DeleteVehicle(ctx, arg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "refresh":
			if err := ctrl.Refresh(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "quit", "exit":
			ctrl.Logout()
			return
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// addVehicle collects a draft interactively, uploads its images through an
// image set, and submits the listing.
func addVehicle(ctx context.Context, in *bufio.Reader, ctrl *dashboard.Controller, client *dashboard.Client) error {
	var draft dashboard.VehicleDraft

	var err error
	if draft.Name, err = promptLine(in, "Name: "); err != nil {
		return err
	}
	if draft.Year, err = promptLine(in, "Year: "); err != nil {
		return err
	}
	if draft.Brand, err = promptLine(in, "Brand: "); err != nil {
		return err
	}
	if draft.BodyType, err = promptLine(in, "Body type: "); err != nil {
		return err
	}
	if draft.Engine, err = promptLine(in, "Engine: "); err != nil {
		return err
	}
	if draft.Fuel, err = promptLine(in, "Fuel: "); err != nil {
		return err
	}
	if draft.Transmission, err = promptLine(in, "Transmission: "); err != nil {
		return err
	}
	if draft.DescriptionES, err = promptLine(in, "Description (es): "); err != nil {
		return err
	}
	if draft.DescriptionEN, err = promptLine(in, "Description (en): "); err != nil {
		return err
	}

	paths, err := promptLine(in, "Image files (space-separated): ")
	if err != nil {
		return err
	}
	set := dashboard.NewImageSet(client)
	for _, p := range strings.Fields(paths) {
		f, err := os.Open(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", p, err)
			continue
		}
		uploadErrs := set.Add(ctx, dashboard.File{
			Name:        filepath.Base(p),
			ContentType: contentTypeFor(p),
			Data:        f,
		})
		f.Close()
		for _, ue := range uploadErrs {
			fmt.Fprintf(os.Stderr, "upload: %v\n", ue)
		}
	}
	draft.Images = set.URLs()

	return ctrl.AddVehicle(ctx, draft)
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func printVehicles(vehicles []domain.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Println("no vehicles")
		return
	}
	for _, v := range vehicles {
		mark := " "
		if v.Available {
			mark = "*"
		}
		fmt.Printf("%s %s  %-24s %s %s  %d image(s)\n",
			mark, v.ID, v.Name, v.Year, v.Brand, len(v.Images))
	}
}

func printContacts(contacts []domain.ContactMessage) {
	if len(contacts) == 0 {
		fmt.Println("no contact messages")
		return
	}
	for _, m := range contacts {
		fmt.Printf("%s  %s <%s>\n  %s\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Name, m.Email, m.Message)
	}
}

func printHelp() {
	fmt.Print(`commands:
  list          show inventory (* = published)
  contacts      show contact inbox
  add           create a listing (prompts for fields and images)
  toggle <id>   flip a listing's availability
  delete <id>   remove a listing (asks for confirmation)
  refresh       re-read inventory and inbox
  quit          log out and exit
`)
}

func promptLine(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptYesNo(in *bufio.Reader, question string) bool {
	answer, err := promptLine(in, question+" [y/N] ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
