package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	rmsv1 "github.com/vladislavdragonenkov/rms/proto/rms/v1"
)

const idempotencyHeader = "idempotency-key"

type loadMode string

const (
	// modeBrowse читает клиентов, меню и сводку дашборда.
	modeBrowse loadMode = "browse"
	// modeClients создаёт клиента и удаляет его с вероятностью delete-rate.
	modeClients loadMode = "clients"
	// modeMenu добавляет позицию меню и удаляет её с вероятностью delete-rate.
	modeMenu loadMode = "menu"
)

// dashboardClient — подмножество RPC, которые использует нагрузочный тест.
type dashboardClient interface {
	ListClients(ctx context.Context, in *rmsv1.ListClientsRequest, opts ...grpc.CallOption) (*rmsv1.ListClientsResponse, error)
	CreateClient(ctx context.Context, in *rmsv1.CreateClientRequest, opts ...grpc.CallOption) (*rmsv1.CreateClientResponse, error)
	DeleteClient(ctx context.Context, in *rmsv1.DeleteClientRequest, opts ...grpc.CallOption) (*rmsv1.MutationResponse, error)
	ListMenu(ctx context.Context, in *rmsv1.ListMenuRequest, opts ...grpc.CallOption) (*rmsv1.ListMenuResponse, error)
	AddMenuItem(ctx context.Context, in *rmsv1.AddMenuItemRequest, opts ...grpc.CallOption) (*rmsv1.AddMenuItemResponse, error)
	DeleteMenuItem(ctx context.Context, in *rmsv1.DeleteMenuItemRequest, opts ...grpc.CallOption) (*rmsv1.MutationResponse, error)
	GetDashboard(ctx context.Context, in *rmsv1.GetDashboardRequest, opts ...grpc.CallOption) (*rmsv1.GetDashboardResponse, error)
}

type config struct {
	addr        string
	total       int
	totalSet    bool
	duration    time.Duration
	concurrency int
	connections int
	timeout     time.Duration
	mode        loadMode
	deleteRate  int
	query       string
	categoryID  string
	price       string
	tag         string
	outputPath  string
}

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	StartedAt         time.Time               `json:"started_at"`
	DurationSeconds   float64                 `json:"duration_seconds"`
	TotalScenarios    int64                   `json:"total_scenarios"`
	SuccessScenarios  int64                   `json:"success_scenarios"`
	FailedScenarios   int64                   `json:"failed_scenarios"`
	ErrorRate         float64                 `json:"error_rate"`
	RPS               float64                 `json:"rps"`
	ScenarioLatencyMs latencySummary          `json:"scenario_latency_ms"`
	Methods           map[string]methodReport `json:"methods"`
}

type methodStats struct {
	calls     int64
	success   int64
	failed    int64
	codes     map[string]int64
	latencies []float64
}

type collector struct {
	mu      sync.Mutex
	methods map[string]*methodStats
}

func newCollector() *collector {
	return &collector{
		methods: make(map[string]*methodStats),
	}
}

func (c *collector) record(method string, latency time.Duration, code codes.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.methods[method]
	if !ok {
		stats = &methodStats{
			codes: make(map[string]int64),
		}
		c.methods[method] = stats
	}

	stats.calls++
	if code == codes.OK {
		stats.success++
	} else {
		stats.failed++
	}
	stats.codes[code.String()]++
	stats.latencies = append(stats.latencies, float64(latency.Microseconds())/1000.0)
}

func (c *collector) snapshot(name string) (methodReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.methods[name]
	if !ok {
		return methodReport{}, false
	}

	codesCopy := make(map[string]int64, len(stats.codes))
	for code, count := range stats.codes {
		codesCopy[code] = count
	}

	return methodReport{
		Calls:     stats.calls,
		Success:   stats.success,
		Failed:    stats.failed,
		ErrorRate: ratio(stats.failed, stats.calls),
		Codes:     codesCopy,
		LatencyMs: buildLatencySummary(stats.latencies),
	}, true
}

func (c *collector) buildReport(startedAt time.Time, duration time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: duration.Seconds(),
		Methods:         make(map[string]methodReport, len(c.methods)),
	}

	scenarioStats := c.methods["scenario"]
	if scenarioStats != nil {
		result.TotalScenarios = scenarioStats.calls
		result.SuccessScenarios = scenarioStats.success
		result.FailedScenarios = scenarioStats.failed
		result.ErrorRate = ratio(scenarioStats.failed, scenarioStats.calls)
		result.ScenarioLatencyMs = buildLatencySummary(scenarioStats.latencies)
	}
	if duration > 0 {
		result.RPS = float64(result.TotalScenarios) / duration.Seconds()
	}

	for name, stats := range c.methods {
		codesCopy := make(map[string]int64, len(stats.codes))
		for code, count := range stats.codes {
			codesCopy[code] = count
		}
		result.Methods[name] = methodReport{
			Calls:     stats.calls,
			Success:   stats.success,
			Failed:    stats.failed,
			ErrorRate: ratio(stats.failed, stats.calls),
			Codes:     codesCopy,
			LatencyMs: buildLatencySummary(stats.latencies),
		}
	}

	return result
}

func parseConfig() (config, error) {
	var cfg config
	var modeValue string
	var timeoutValue string
	var durationValue string

	flag.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	flag.IntVar(&cfg.total, "total", 400, "total scenarios to execute in count mode; in duration mode only used when explicitly set")
	flag.StringVar(&durationValue, "duration", "0s", "optional time-based run duration (e.g. 10m, 15m)")
	flag.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent workers")
	flag.IntVar(&cfg.connections, "connections", 20, "number of gRPC client connections")
	flag.StringVar(&timeoutValue, "timeout", "5s", "per-RPC timeout")
	flag.StringVar(&modeValue, "mode", string(modeBrowse), "load mode: browse | clients | menu")
	flag.IntVar(&cfg.deleteRate, "delete-rate", 100, "probability in percent to delete the created entity (0..100)")
	flag.StringVar(&cfg.query, "query", "", "search query for list calls in browse mode")
	flag.StringVar(&cfg.categoryID, "category", "cat1", "menu category id for menu mode")
	flag.StringVar(&cfg.price, "price", "9.99", "menu item price for menu mode")
	flag.StringVar(&cfg.tag, "tag", "load", "prefix for generated names")
	flag.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	flag.Parse()

	timeout, err := time.ParseDuration(strings.TrimSpace(timeoutValue))
	if err != nil {
		return cfg, fmt.Errorf("parse timeout: %w", err)
	}
	cfg.timeout = timeout

	duration, err := time.ParseDuration(strings.TrimSpace(durationValue))
	if err != nil {
		return cfg, fmt.Errorf("parse duration: %w", err)
	}
	cfg.duration = duration

	flag.CommandLine.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode

	if cfg.duration < 0 {
		return cfg, errors.New("duration must be >= 0")
	}
	if cfg.duration == 0 && cfg.total <= 0 {
		return cfg, errors.New("total must be > 0 when duration is not set")
	}
	if cfg.duration > 0 && cfg.totalSet && cfg.total <= 0 {
		return cfg, errors.New("total must be > 0 when explicitly set with duration")
	}
	if cfg.concurrency <= 0 {
		return cfg, errors.New("concurrency must be > 0")
	}
	if cfg.connections <= 0 {
		return cfg, errors.New("connections must be > 0")
	}
	if cfg.timeout <= 0 {
		return cfg, errors.New("timeout must be > 0")
	}
	if cfg.deleteRate < 0 || cfg.deleteRate > 100 {
		return cfg, errors.New("delete-rate must be between 0 and 100")
	}
	if price, err := decimal.NewFromString(strings.TrimSpace(cfg.price)); err != nil || !price.IsPositive() {
		return cfg, fmt.Errorf("price must be a positive decimal, got %q", cfg.price)
	}
	if cfg.mode == modeMenu && strings.TrimSpace(cfg.categoryID) == "" {
		return cfg, errors.New("category is required in menu mode")
	}
	if strings.TrimSpace(cfg.tag) == "" {
		return cfg, errors.New("tag is required")
	}

	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case modeBrowse, modeClients, modeMenu:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	clients := make([]dashboardClient, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, dialErr := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create grpc client connection: %v\n", dialErr)
			os.Exit(1)
		}
		conns = append(conns, conn)
		clients = append(clients, rmsv1.NewDashboardServiceClient(conn))
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	startedAt := time.Now()
	runID := fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid())
	col := newCollector()

	jobs := make(chan int, cfg.concurrency*2)
	var failures int64
	var wg sync.WaitGroup

	for workerID := 0; workerID < cfg.concurrency; workerID++ {
		wg.Add(1)
		client := clients[workerID%len(clients)]
		go func(cli dashboardClient) {
			defer wg.Done()
			for id := range jobs {
				if runErr := runScenario(cli, cfg, id, runID, col); runErr != nil {
					atomic.AddInt64(&failures, 1)
				}
			}
		}(client)
	}

	dispatchJobs(jobs, cfg)
	wg.Wait()

	duration := time.Since(startedAt)
	result := col.buildReport(startedAt, duration)
	if result.FailedScenarios == 0 && failures > 0 {
		result.FailedScenarios = failures
		result.ErrorRate = ratio(result.FailedScenarios, result.TotalScenarios)
	}

	printReport(result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}

	if result.FailedScenarios > 0 {
		os.Exit(1)
	}
}

func dispatchJobs(jobs chan<- int, cfg config) {
	defer close(jobs)

	if cfg.duration <= 0 {
		for i := 0; i < cfg.total; i++ {
			jobs <- i
		}
		return
	}

	timer := time.NewTimer(cfg.duration)
	defer timer.Stop()

	for i := 0; ; i++ {
		if cfg.totalSet && i >= cfg.total {
			return
		}

		select {
		case <-timer.C:
			return
		case jobs <- i:
		}
	}
}

func runScenario(
	client dashboardClient,
	cfg config,
	index int,
	runID string,
	col *collector,
) error {
	scenarioStart := time.Now()
	scenarioCode := codes.OK
	defer func() {
		col.record("scenario", time.Since(scenarioStart), scenarioCode)
	}()

	var err error
	switch cfg.mode {
	case modeClients:
		err = runClientScenario(client, cfg, index, runID, col)
	case modeMenu:
		err = runMenuScenario(client, cfg, index, runID, col)
	default:
		err = runBrowseScenario(client, cfg, col)
	}
	if err != nil {
		scenarioCode = grpcCode(err)
		if scenarioCode == codes.Unknown {
			scenarioCode = codes.Internal
		}
	}
	return err
}

func runBrowseScenario(client dashboardClient, cfg config, col *collector) error {
	if err := timedCall(col, "ListClients", cfg.timeout, "", func(ctx context.Context) error {
		_, err := client.ListClients(ctx, &rmsv1.ListClientsRequest{Query: cfg.query})
		return err
	}); err != nil {
		return err
	}
	if err := timedCall(col, "ListMenu", cfg.timeout, "", func(ctx context.Context) error {
		_, err := client.ListMenu(ctx, &rmsv1.ListMenuRequest{Query: cfg.query})
		return err
	}); err != nil {
		return err
	}
	return timedCall(col, "GetDashboard", cfg.timeout, "", func(ctx context.Context) error {
		resp, err := client.GetDashboard(ctx, &rmsv1.GetDashboardRequest{})
		if err == nil && resp.Summary == nil {
			return errors.New("dashboard response returned empty summary")
		}
		return err
	})
}

func runClientScenario(client dashboardClient, cfg config, index int, runID string, col *collector) error {
	var clientID string
	key := fmt.Sprintf("lt-client-%s-%d", runID, index)
	err := timedCall(col, "CreateClient", cfg.timeout, key, func(ctx context.Context) error {
		resp, err := client.CreateClient(ctx, &rmsv1.CreateClientRequest{
			Name:  fmt.Sprintf("%s client %d", cfg.tag, index),
			Email: fmt.Sprintf("%s-%s-%d@load.test", cfg.tag, runID, index),
			Phone: fmt.Sprintf("+1-555-%04d", index%10000),
		})
		if err != nil {
			return err
		}
		if resp.Client == nil || resp.Client.ID == "" {
			return errors.New("create response returned empty client id")
		}
		clientID = resp.Client.ID
		return nil
	})
	if err != nil {
		return err
	}

	if !shouldDelete(index, cfg.deleteRate) {
		return nil
	}
	return timedCall(col, "DeleteClient", cfg.timeout, "", func(ctx context.Context) error {
		resp, err := client.DeleteClient(ctx, &rmsv1.DeleteClientRequest{ClientID: clientID})
		if err == nil && !resp.Applied {
			return fmt.Errorf("client %s was not deleted", clientID)
		}
		return err
	})
}

func runMenuScenario(client dashboardClient, cfg config, index int, runID string, col *collector) error {
	var itemID string
	key := fmt.Sprintf("lt-item-%s-%d", runID, index)
	err := timedCall(col, "AddMenuItem", cfg.timeout, key, func(ctx context.Context) error {
		resp, err := client.AddMenuItem(ctx, &rmsv1.AddMenuItemRequest{
			Name:       fmt.Sprintf("%s item %d", cfg.tag, index),
			Price:      cfg.price,
			CategoryID: cfg.categoryID,
		})
		if err != nil {
			return err
		}
		if resp.Item == nil || resp.Item.ID == "" {
			return errors.New("add response returned empty item id")
		}
		itemID = resp.Item.ID
		return nil
	})
	if err != nil {
		return err
	}

	if !shouldDelete(index, cfg.deleteRate) {
		return nil
	}
	return timedCall(col, "DeleteMenuItem", cfg.timeout, "", func(ctx context.Context) error {
		resp, err := client.DeleteMenuItem(ctx, &rmsv1.DeleteMenuItemRequest{ItemID: itemID, CategoryID: cfg.categoryID})
		if err == nil && !resp.Applied {
			return fmt.Errorf("menu item %s was not deleted", itemID)
		}
		return err
	})
}

// timedCall выполняет RPC с таймаутом и записывает латентность под именем method.
// Непустой key уходит в metadata как ключ идемпотентности.
func timedCall(col *collector, method string, timeout time.Duration, key string, call func(context.Context) error) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if key != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, idempotencyHeader, key)
	}

	err := call(ctx)
	code := grpcCode(err)
	if err != nil && code == codes.Unknown {
		code = codes.Internal
	}
	col.record(method, time.Since(start), code)
	return err
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}

func shouldDelete(index, deleteRate int) bool {
	if deleteRate <= 0 {
		return false
	}
	if deleteRate >= 100 {
		return true
	}
	return index%100 < deleteRate
}

func writeJSONReport(path string, result report) error {
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return errors.New("output path must point to a file")
	}
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path must be inside current directory: %s", path)
	}

	// #nosec G304 -- path is an explicit CLI output parameter for local load-test reports.
	file, err := os.Create(cleanPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printReport(result report, cfg config) {
	fmt.Println("Load test summary")
	fmt.Printf("mode=%s run=%s total=%d success=%d failed=%d error_rate=%.4f\n",
		cfg.mode,
		runTarget(cfg),
		result.TotalScenarios,
		result.SuccessScenarios,
		result.FailedScenarios,
		result.ErrorRate,
	)
	fmt.Printf("duration=%.2fs rps=%.2f\n", result.DurationSeconds, result.RPS)
	fmt.Printf("scenario latency ms: min=%.2f avg=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		result.ScenarioLatencyMs.Min,
		result.ScenarioLatencyMs.Avg,
		result.ScenarioLatencyMs.P50,
		result.ScenarioLatencyMs.P95,
		result.ScenarioLatencyMs.P99,
		result.ScenarioLatencyMs.Max,
	)

	methodNames := make([]string, 0, len(result.Methods))
	for name := range result.Methods {
		if name == "scenario" {
			continue
		}
		methodNames = append(methodNames, name)
	}
	sort.Strings(methodNames)
	for _, name := range methodNames {
		stats := result.Methods[name]
		fmt.Printf(
			"%s: calls=%d success=%d failed=%d error_rate=%.4f p95=%.2fms\n",
			name,
			stats.Calls,
			stats.Success,
			stats.Failed,
			stats.ErrorRate,
			stats.LatencyMs.P95,
		)
	}
}

func runTarget(cfg config) string {
	if cfg.duration <= 0 {
		return fmt.Sprintf("count:%d", cfg.total)
	}
	if cfg.totalSet {
		return fmt.Sprintf("duration:%s,max-total:%d", cfg.duration, cfg.total)
	}
	return fmt.Sprintf("duration:%s", cfg.duration)
}

func buildLatencySummary(values []float64) latencySummary {
	if len(values) == 0 {
		return latencySummary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, value := range sorted {
		sum += value
	}

	return latencySummary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		Avg: sum / float64(len(sorted)),
		P50: percentile(sorted, 50),
		P95: percentile(sorted, 95),
		P99: percentile(sorted, 99),
	}
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := (p / 100.0) * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	weight := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*weight
}

func ratio(failed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(failed) / float64(total)
}
