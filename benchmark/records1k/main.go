package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	vitalsGrpc "liyu1981.xyz/vitals-console/pkg/grpc"
)

var maxUsers int = 1000
var recordsPerUser int = 3
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient vitalsGrpc.ThresholdServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var throttled atomic.Int64
var failed atomic.Int64

func main() {
	adminUser := os.Getenv("VITALS_SUPER_ADMIN_USERNAME")
	adminPassword := os.Getenv("VITALS_SUPER_ADMIN_PASSWORD")
	if adminUser == "" {
		log.Fatal("set VITALS_SUPER_ADMIN_USERNAME and VITALS_SUPER_ADMIN_PASSWORD to the server's bootstrap account")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	rootToken, err := login(adminUser, adminPassword)
	if err != nil {
		log.Fatal("Failed to login as super admin:", err)
	}

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = vitalsGrpc.NewThresholdServiceClient(conn)

	fmt.Printf("gRPC server connected\n")

	var startTime time.Time
	var usedTime time.Duration

	tokens := make([]string, maxUsers)
	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens[i] = createUser(rootToken)
			fmt.Printf("\rcreated user %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxUsers {
		if tokens[i] == "" {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			doActions(tokens[i])
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v users: used time=%v seconds, throughput=%v action/second, throttled=%v, failed=%v\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers*recordsPerUser)/usedTime.Seconds(), throttled.Load(), failed.Load(),
	)

	startTime = time.Now()
	summary, err := preview(rootToken)
	if err != nil {
		log.Fatal("Preview failed:", err)
	}
	fmt.Printf("preview over stored records in %v seconds: %v\n", time.Since(startTime).Seconds(), summary.AsMap())
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func postJSON(path, token string, payload any) (*http.Response, error) {
	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return http.DefaultClient.Do(req)
}

func login(username, password string) (string, error) {
	resp, err := postJSON("/api/v1/auth/login", "", map[string]string{"username": username, "password": password})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login status %v", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.AccessToken, nil
}

func createUser(rootToken string) string {
	username := "bench-" + uuid.NewString()[:8]
	password := "bench" + uuid.NewString()[:8] + "1"

	resp, err := postJSON("/api/v1/admin/users", rootToken, map[string]string{"username": username, "password": password})
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		failed.Add(1)
		return ""
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("\nresponse status code != 201: %v\n", resp.StatusCode)
		failed.Add(1)
		return ""
	}

	token, err := login(username, password)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		failed.Add(1)
		return ""
	}
	return token
}

func reading() map[string]any {
	r := map[string]any{
		"systolic":  rndFloat64(85, 150, 0),
		"diastolic": rndFloat64(55, 100, 0),
	}
	if flipCoin() {
		r["heart_rate"] = rndFloat64(50, 110, 0)
	}
	return r
}

func doActions(token string) {
	for range recordsPerUser {
		if flipCoin() {
			postRecord(token)
		} else {
			classify(token)
		}
		rndMu.Lock()
		pause := time.Duration(100+rnd.Int31n(1000)) * time.Millisecond
		rndMu.Unlock()
		time.Sleep(pause)
	}
}

func postRecord(token string) {
	resp, err := postJSON("/api/v1/records", token, reading())
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		failed.Add(1)
		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusTooManyRequests:
		throttled.Add(1)
	default:
		fmt.Printf("\nresponse status code != 201: %v\n", resp.StatusCode)
		failed.Add(1)
	}
}

func classify(token string) {
	payload, err := structpb.NewStruct(reading())
	if err != nil {
		panic(err)
	}
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
	if _, err := grpcClient.ClassifyRecord(ctx, payload); err != nil {
		fmt.Printf("\nerror: %v\n", err)
		failed.Add(1)
	}
}

func preview(rootToken string) (*structpb.Struct, error) {
	candidate, err := structpb.NewStruct(map[string]any{
		"systolic_min": 90, "systolic_max": 120,
		"diastolic_min": 60, "diastolic_max": 90,
		"heart_rate_min": 60, "heart_rate_max": 90,
	})
	if err != nil {
		return nil, err
	}
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+rootToken)
	return grpcClient.PreviewImpact(ctx, candidate)
}
