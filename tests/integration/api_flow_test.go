package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

// 跑这组用例需要一个起好的服务和干净的库：
//
//	INTEGRATION_BASE_URL=http://127.0.0.1:9527 go test ./tests/integration/
func baseURL(t *testing.T) string {
	url := os.Getenv("INTEGRATION_BASE_URL")
	if url == "" {
		t.Skip("INTEGRATION_BASE_URL not set; skipping integration test")
	}
	return url
}

func TestArticleTagJoinFlow(t *testing.T) {
	base := baseURL(t)
	client := &http.Client{Timeout: 5 * time.Second}

	// 1. 创建标签
	tagResp, err := postJSON(client, base+"/createTag", map[string]any{
		"name":  fmt.Sprintf("it-tag-%d", time.Now().UnixNano()),
		"color": "#00ADD8",
	})
	if err != nil {
		t.Fatalf("create tag failed: %v", err)
	}
	tagID := insertedID(t, tagResp)

	// 2. 创建引用该标签的已发布文章
	articleResp, err := postJSON(client, base+"/createArticle", map[string]any{
		"title": fmt.Sprintf("it-article-%d", time.Now().UnixNano()),
		"cont":  "integration body",
		"tags":  []string{tagID},
		"flag":  1,
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	articleID := insertedID(t, articleResp)

	// 3. 查询这篇文章，tags 必须是完整标签对象而不是 id 字符串
	queryResp, err := postJSON(client, base+"/queryArticles", map[string]any{
		"id": articleID,
	})
	if err != nil {
		t.Fatalf("query article failed: %v", err)
	}
	data, ok := queryResp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one article, got %v", queryResp["data"])
	}
	article := data[0].(map[string]any)
	tags, ok := article["tags"].([]any)
	if !ok || len(tags) != 1 {
		t.Fatalf("expected one resolved tag, got %v", article["tags"])
	}
	tag := tags[0].(map[string]any)
	if tag["id"] != tagID {
		t.Fatalf("resolved tag id mismatch: %v != %v", tag["id"], tagID)
	}
	if tag["name"] == nil || tag["name"] == "" {
		t.Fatalf("resolved tag carries no name: %v", tag)
	}
	if article["publishTime"] == "" {
		t.Fatal("published article carries no publishTime")
	}
}

func TestDuplicateRegistration(t *testing.T) {
	base := baseURL(t)
	client := &http.Client{Timeout: 5 * time.Second}

	phone := fmt.Sprintf("138%08d", time.Now().UnixNano()%100000000)
	payload := map[string]any{"phone": phone, "password": "Passw0rd!"}

	first, err := postJSON(client, base+"/createUser", payload)
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if first["code"] != float64(0) {
		t.Fatalf("first register rejected: %v", first)
	}

	// 二次注册必须是业务拒绝，不是异常
	second, err := postJSON(client, base+"/createUser", payload)
	if err != nil {
		t.Fatalf("second register transport failed: %v", err)
	}
	if second["code"] != float64(-1) {
		t.Fatalf("expected code -1, got %v", second)
	}
	if second["msg"] != "该手机号已注册" {
		t.Fatalf("unexpected msg: %v", second["msg"])
	}
}

func postJSON(client *http.Client, url string, body any) (map[string]any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

func insertedID(t *testing.T, envelope map[string]any) string {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("envelope carries no data: %v", envelope)
	}
	id, ok := data["insertedId"].(string)
	if !ok || id == "" {
		t.Fatalf("envelope carries no insertedId: %v", envelope)
	}
	return id
}
