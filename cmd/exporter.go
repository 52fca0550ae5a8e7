package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"stashboard-cli/pkg/client"
)

// Variables to hold flag values
var (
	expHost       string
	expToken      string
	expSecret     string
	expPort       string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *client.StashboardClient
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	// 1. Verify we can reach the dashboard before serving metrics
	log.Println("Checking dashboard connectivity...")
	if _, err := p.api.GetServices(); err != nil {
		log.Printf("Fatal: Dashboard check failed: %v", err)
		// Exit so the service manager attempts a restart.
		os.Exit(1)
	}
	log.Println("Dashboard reachable.")

	// 2. Setup Prometheus
	registry := prometheus.NewRegistry()
	collector := &StashboardCollector{Client: p.api}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Stashboard Exporter listening on %s", addr)

	// Blocking call to listen
	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR LOGIC ---

type StashboardCollector struct {
	Client *client.StashboardClient
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"stashboard_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"stashboard_scrape_duration_seconds", "Time taken to scrape API.", nil, nil,
	)
	serviceCountDesc = prometheus.NewDesc(
		"stashboard_services_total", "Number of services on the dashboard.", nil, nil,
	)
	serviceHealthDesc = prometheus.NewDesc(
		"stashboard_service_health", "Current service state (1.0=UP, 0.5=WARNING, 0.0=DOWN).", []string{"id", "name", "status"}, nil,
	)
	statusCountDesc = prometheus.NewDesc(
		"stashboard_statuses_total", "Total status definitions grouped by level.", []string{"level"}, nil,
	)
)

func (c *StashboardCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- serviceCountDesc
	ch <- serviceHealthDesc
	ch <- statusCountDesc
}

func (c *StashboardCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	// 1. Statuses (needed to map an event's status id to a level)
	statusLevels := make(map[string]string)
	if statuses, err := c.Client.GetStatuses(); err == nil {
		levelCounts := make(map[string]float64)
		for _, st := range statuses {
			statusLevels[st.ID] = st.Level

			lvl := strings.ToUpper(st.Level)
			if lvl == "" {
				lvl = "UNKNOWN"
			}
			levelCounts[lvl]++
		}
		for lvl, cnt := range levelCounts {
			ch <- prometheus.MustNewConstMetric(statusCountDesc, prometheus.GaugeValue, cnt, lvl)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping statuses: %v", err)
	}

	// 2. Services and their current events
	if services, err := c.Client.GetServices(); err == nil {
		ch <- prometheus.MustNewConstMetric(serviceCountDesc, prometheus.GaugeValue, float64(len(services)))

		for _, svc := range services {
			event := svc.CurrentEvent
			if event == nil {
				// List responses omit the current event on some
				// deployments; fall back to the per-service endpoint.
				cur, err := c.Client.GetCurrentEvent(svc.ID)
				if err != nil {
					log.Printf("Error scraping current event for %s: %v", svc.ID, err)
					continue
				}
				event = cur
			}

			health := levelScore(statusLevels[event.Status])
			ch <- prometheus.MustNewConstMetric(serviceHealthDesc, prometheus.GaugeValue, health, svc.ID, svc.Name, event.Status)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping services: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// levelScore maps a severity level tag onto a gauge value.
func levelScore(level string) float64 {
	switch strings.ToUpper(level) {
	case "NORMAL", "UP", "OK", "INFO":
		return 1.0
	case "WARNING", "WARN":
		return 0.5
	default:
		return 0.0
	}
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes dashboard metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Setup Client Config
		hostClean := strings.TrimRight(expHost, "/")
		api, err := client.New(client.ClientConfig{
			BaseURL: hostClean,
			Token:   expToken,
			Secret:  expSecret,
		})
		if err != nil {
			log.Fatal(err)
		}

		// 2. Define Service Configuration
		svcConfig := &service.Config{
			Name:        "stashboard-exporter",
			DisplayName: "Stashboard Prometheus Exporter",
			Description: "Exposes status-dashboard metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--url", expHost,
				"--token", expToken,
				"--secret", expSecret,
				"--port", expPort,
			},
		}

		prg := &program{
			api: api,
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// 3. Handle Service Control Actions (Install, Start, Stop, Uninstall)
		if serviceAction != "" {
			if serviceAction == "install" {
				// Validate required flags before installing
				if expHost == "" || expToken == "" || expSecret == "" {
					log.Fatal("Error: You must provide all credentials (--url, --token, --secret) to install the service.")
				}
			}

			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// 4. Run the Service (Blocking)
		// This happens when the Service Manager starts the binary, OR when run interactively
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expHost, "url", "", "Dashboard base URL")
	exporterCmd.Flags().StringVar(&expToken, "token", "", "OAuth token")
	exporterCmd.Flags().StringVar(&expSecret, "secret", "", "OAuth token secret")
	exporterCmd.Flags().StringVar(&expPort, "port", "9101", "Port to listen on")

	// Service Control flag
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
