package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PaymentRequest represents the transaction payload
type PaymentRequest struct {
	TransactionType        string `json:"transactionType"`
	PaymentExternalKey     string `json:"paymentExternalKey"`
	TransactionExternalKey string `json:"transactionExternalKey"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Declined     bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	DeclinedRequests   int // 402 and 502, the gateway answered
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	AccountStats       map[string]int // Track requests per account
	ScenarioStats      map[string]int // Track requests per scenario
	Lock               sync.Mutex
}

// PaymentScenario defines a transaction scenario
type PaymentScenario struct {
	Name            string // For stats tracking
	TransactionType string
	Amount          string
}

func main() {
	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	accountIDsStr := flag.String("a", "", "Comma-separated list of account ids to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	currency := flag.String("currency", "USD", "Currency of the generated payments")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	targetTps := flag.Float64("tps", 30, "Throughput the run is expected to reach")
	flag.Parse()

	var accountIDs []string
	for _, idStr := range strings.Split(*accountIDsStr, ",") {
		if _, err := uuid.Parse(strings.TrimSpace(idStr)); err == nil {
			accountIDs = append(accountIDs, strings.TrimSpace(idStr))
		}
	}
	if len(accountIDs) == 0 {
		fmt.Println("At least one valid account id is required (-a)")
		return
	}

	scenarios := []PaymentScenario{
		{"Purchase Small", "PURCHASE", "10.00"},
		{"Purchase Large", "PURCHASE", "250.00"},
		{"Authorize Small", "AUTHORIZE", "15.00"},
		{"Authorize Large", "AUTHORIZE", "400.00"},
		{"Credit", "CREDIT", "5.00"},
	}

	fmt.Printf("Load testing API across %d accounts\n", len(accountIDs))
	fmt.Printf("Payment scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		AccountStats:    make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *currency, *delayMs, accountIDs, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
			case result.Declined:
				stats.DeclinedRequests++
			default:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.DeclinedRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats, *targetTps)
}

func worker(baseURL, currency string, delayMs int, accountIDs []string,
	scenarios []PaymentScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		accountID := accountIDs[rand.Intn(len(accountIDs))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.AccountStats[accountID]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		apiURL := fmt.Sprintf("%s/accounts/%s/payments", baseURL, accountID)
		payload := PaymentRequest{
			TransactionType:        scenario.TransactionType,
			PaymentExternalKey:     "load-" + uuid.NewString(),
			TransactionExternalKey: "load-" + uuid.NewString(),
			Amount:                 scenario.Amount,
			Currency:               currency,
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Created-By", "load-test")

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			switch {
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				result.Success = true
			case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusBadGateway:
				result.Declined = true
			default:
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats, targetTps float64) {
	answered := stats.SuccessfulRequests + stats.DeclinedRequests
	rawTps := float64(answered) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
	copy(sortedTimes, stats.ResponseTimes)
	sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

	pct := func(n int) float64 { return float64(n) / float64(stats.TotalRequests) * 100 }

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Payments: %d (%.1f%%)\n", stats.SuccessfulRequests, pct(stats.SuccessfulRequests))
	fmt.Printf("Declined Payments:   %d (%.1f%%)\n", stats.DeclinedRequests, pct(stats.DeclinedRequests))
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests, pct(stats.FailedRequests))
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (answered requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were answered)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sortedTimes, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sortedTimes, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sortedTimes, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sortedTimes, 99))

	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	for accountID, count := range stats.AccountStats {
		fmt.Printf("%s: %d requests (%.1f%%)\n", accountID, count, pct(count))
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-16s: %d requests (%.1f%%)\n", scenario, count, pct(count))
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count, pct(count))
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if rawTps >= targetTps {
		fmt.Printf("Target of %.0f TPS reached (%.2f TPS)\n", targetTps, rawTps)
	} else {
		fmt.Printf("Target of %.0f TPS NOT reached (%.2f TPS)\n", targetTps, rawTps)
	}
	fmt.Println("================================================")
}
