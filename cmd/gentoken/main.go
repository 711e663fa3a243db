// 运维辅助：为 API 调用方签发 Bearer 令牌。
//
// Usage:
//
//	go run cmd/gentoken/main.go -user admin -config .
package main

import (
	"flag"
	"fmt"
	"log"

	"newsapi/config"
	"newsapi/internal/auth"
)

func main() {
	user := flag.String("user", "", "subject written into the token claims")
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	if *user == "" {
		log.Fatal("user is required, use -user")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewTokenManager(cfg.JWT).Generate(*user)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
