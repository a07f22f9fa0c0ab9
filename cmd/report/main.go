// Command report is the end-user side of urepair: it files a repair
// ticket without requiring a console session, and drives the two
// password endpoints.
//
//	report --equipment-id 12 --priority HIGH --description "drum bangs"
//	report forgot-password --email user@x.edu
//	report reset-password --token TOKEN --password NEWPASS
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"

	"github.com/urepair/console/internal/client"
	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/service/auth"
	"github.com/urepair/console/internal/service/issue"
	"github.com/urepair/console/pkg/logger"
	"github.com/urepair/console/pkg/metrics"
)

func main() {
	var (
		equipmentID int
		priority    string
		description string
		email       string
		token       string
		password    string
	)

	flag.IntVar(&equipmentID, "equipment-id", 0, "id of the broken equipment")
	flag.StringVar(&priority, "priority", string(model.PriorityMedium), "LOW, MEDIUM, HIGH or URGENT")
	flag.StringVar(&description, "description", "", "what is broken")
	flag.StringVar(&email, "email", "", "account email (forgot-password)")
	flag.StringVar(&token, "token", "", "reset token (reset-password)")
	flag.StringVar(&password, "password", "", "new password (reset-password)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Output: os.Stderr,
	})

	m := metrics.New("urepair_report")
	if err := m.Register(prometheus.DefaultRegisterer); err != nil {
		log.Warn("metrics registration failed", "error", err)
	}

	apiClient, err := client.New(cfg.API, log, m)
	if err != nil {
		log.Fatal(err, "failed to build API client")
	}

	ctx := context.Background()
	mode := flag.Arg(0)

	switch mode {
	case "forgot-password":
		err = auth.NewService(apiClient, log).ForgotPassword(ctx, email)
	case "reset-password":
		err = auth.NewService(apiClient, log).ResetPassword(ctx, token, password)
	case "":
		err = submit(ctx, issue.NewService(apiClient, log), equipmentID, priority, description)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", mode)
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", auth.StatusFailure, err)
		os.Exit(1)
	}
	fmt.Println(auth.StatusSuccess)
}

// submit files a ticket, prompting for the description when it was
// not given as a flag.
func submit(ctx context.Context, svc *issue.Service, equipmentID int, priority, description string) error {
	if description == "" {
		fmt.Print("describe the problem: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read description: %w", err)
		}
		description = strings.TrimSpace(line)
	}

	issues, err := svc.Submit(ctx, issue.SubmitRequest{
		EquipmentID: equipmentID,
		Priority:    model.Priority(strings.ToUpper(priority)),
		Description: description,
	})
	if err != nil {
		return err
	}
	fmt.Printf("ticket filed; %d open tickets on record\n", len(issues))
	return nil
}
