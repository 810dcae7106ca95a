//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

// Ручная проверка основных маршрутов запущенного сервера:
// go run scripts/smoke_api.go -base http://localhost:8080

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "API base URL")
	flag.Parse()

	client := &http.Client{}

	// Создание сада
	createBody := map[string]interface{}{
		"latitude":  41.3874,
		"longitude": 2.1686,
		"hasSlide":  true,
		"hasSwings": true,
	}
	garden := postJSON(client, *baseURL+"/api/gardens", createBody)
	gardenID, _ := garden["id"].(string)
	fmt.Printf("created garden %s in %v\n", gardenID, garden["city"])

	// Обновление счётчика детей
	updated := putJSON(client, *baseURL+"/api/gardens/"+gardenID+"/kidscount",
		map[string]interface{}{"kidsCount": 4})
	fmt.Printf("kids count update: %v\n", updated["message"])

	// Клик по фильтру
	click := postJSON(client, *baseURL+"/api/stats/filter-click",
		map[string]interface{}{"filterName": "hasSlide"})
	fmt.Printf("click: %v\n", click["message"])

	// Статистика
	resp, err := client.Get(*baseURL + "/api/stats/filter-clicks")
	if err != nil {
		log.Fatalf("get stats: %v", err)
	}
	defer resp.Body.Close()

	var stats map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		log.Fatalf("decode stats: %v", err)
	}
	fmt.Printf("stats lastDay: %v\n", stats["lastDay"])
}

func postJSON(client *http.Client, url string, body map[string]interface{}) map[string]interface{} {
	return doJSON(client, http.MethodPost, url, body)
}

func putJSON(client *http.Client, url string, body map[string]interface{}) map[string]interface{} {
	return doJSON(client, http.MethodPut, url, body)
}

func doJSON(client *http.Client, method, url string, body map[string]interface{}) map[string]interface{} {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Fatalf("%s %s: status %d", method, url, resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("decode response: %v", err)
	}
	return result
}
