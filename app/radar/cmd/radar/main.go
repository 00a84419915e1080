package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/iWorld-y/compliance_radar/app/radar/pkg/config"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/engine"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/logger"
)

func main() {
	confPath := flag.String("conf", "app/radar/configs/config.yaml", "config path, eg: -conf config.yaml")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(*confPath)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 2. 初始化日志，payload 输出到 stdout，日志只写 stderr 和文件
	if _, err := logger.InitLoggerTo(os.Stderr, cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动合规雷达...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// 3. 初始化引擎
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		logger.Log.Fatalf("引擎初始化失败: %v", err)
	}

	cred, err := eng.ResolveCredential()
	if err != nil {
		logger.Log.Fatalf("凭证不可用: %v", err)
	}

	// 4. 生成，独立运行时没有当前关注领域
	res := eng.Synthesize(ctx, cred.Key, nil)
	if res.Degraded {
		logger.Log.Warnf("已降级为合成数据: %v", res.Cause)
	}

	out, err := json.MarshalIndent(res.Payload, "", "  ")
	if err != nil {
		logger.Log.Fatalf("序列化失败: %v", err)
	}
	fmt.Println(string(out))
}
