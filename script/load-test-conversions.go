package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// conversionRequest is the payload of POST /pool/conversions
type conversionRequest struct {
	Points int64 `json:"points"`
}

// scenario is one conversion amount sent during the run
type scenario struct {
	Name   string
	Points int64
}

// result holds metrics for a single request
type result struct {
	Scenario     string
	UserIndex    int
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// stats aggregates the run
type stats struct {
	mu            sync.Mutex
	total         int
	byStatus      map[int]int
	byScenario    map[string]int
	byUser        map[int]int
	errors        map[string]int
	responseTimes []time.Duration
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	tokensFlag := flag.String("t", "", "Comma-separated session tokens, one per user (or set LOADTEST_TOKENS)")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	raw := *tokensFlag
	if raw == "" {
		raw = os.Getenv("LOADTEST_TOKENS")
	}
	var tokens []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		fmt.Fprintln(os.Stderr, "at least one session token is required (-t or LOADTEST_TOKENS)")
		os.Exit(2)
	}

	// Below-minimum amounts are expected to come back as 422
	scenarios := []scenario{
		{"below minimum", 500},
		{"minimum", 1000},
		{"medium", 2500},
		{"large", 10000},
	}

	fmt.Printf("Load testing conversions across %d users\n", len(tokens))
	fmt.Printf("Concurrency: %d, requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	s := &stats{
		total:      *totalRequests,
		byStatus:   make(map[int]int),
		byScenario: make(map[string]int),
		byUser:     make(map[int]int),
		errors:     make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	client := &http.Client{Timeout: 10 * time.Second}
	endpoint := strings.TrimRight(*baseURL, "/") + "/pool/conversions"

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				userIndex := rand.IntN(len(tokens))
				sc := scenarios[rand.IntN(len(scenarios))]
				s.record(submit(client, endpoint, tokens[userIndex], sc, userIndex))
			}
		}()
	}
	wg.Wait()

	s.print(time.Since(start))
}

func submit(client *http.Client, endpoint, token string, sc scenario, userIndex int) result {
	res := result{Scenario: sc.Name, UserIndex: userIndex}

	body, err := json.Marshal(conversionRequest{Points: sc.Points})
	if err != nil {
		res.Err = err
		return res
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		res.Err = err
		return res
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	started := time.Now()
	resp, err := client.Do(req)
	res.ResponseTime = time.Since(started)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	return res
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byScenario[r.Scenario]++
	s.byUser[r.UserIndex]++
	if r.Err != nil {
		s.errors[r.Err.Error()]++
		return
	}
	s.byStatus[r.StatusCode]++
	s.responseTimes = append(s.responseTimes, r.ResponseTime)
}

func (s *stats) print(elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.Slice(s.responseTimes, func(i, j int) bool { return s.responseTimes[i] < s.responseTimes[j] })
	percentile := func(p int) time.Duration {
		if len(s.responseTimes) == 0 {
			return 0
		}
		return s.responseTimes[len(s.responseTimes)*p/100]
	}

	var sum time.Duration
	for _, d := range s.responseTimes {
		sum += d
	}
	var avg time.Duration
	if len(s.responseTimes) > 0 {
		avg = sum / time.Duration(len(s.responseTimes))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:   %d\n", s.total)
	fmt.Printf("Total Test Time:  %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:       %.2f req/s\n", float64(len(s.responseTimes))/elapsed.Seconds())

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(s.byStatus))
	for code := range s.byStatus {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("%d %-25s %d\n", code, http.StatusText(code), s.byStatus[code])
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v\n", avg)
	fmt.Printf("P50:     %v\n", percentile(50))
	fmt.Printf("P90:     %v\n", percentile(90))
	fmt.Printf("P99:     %v\n", percentile(99))

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for name, count := range s.byScenario {
		fmt.Printf("%-15s %d\n", name, count)
	}

	fmt.Println("\n----------------- USERS -----------------")
	for user, count := range s.byUser {
		fmt.Printf("user #%d: %d requests\n", user+1, count)
	}

	if len(s.errors) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range s.errors {
			fmt.Printf("%-50s %d\n", msg, count)
		}
	}
	fmt.Println("================================================")
}
