package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/paiban-dev/store-scheduler/backend/internal/config"
	"github.com/paiban-dev/store-scheduler/backend/internal/repository"
	"github.com/paiban-dev/store-scheduler/backend/internal/seed"
	"github.com/paiban-dev/store-scheduler/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var storeID int64

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机门店, 2: 插入随机员工, 3: 插入随机班次模板, 4: 插入完整演示数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&storeID, "store-id", 0, "员工或模板所属的门店 ID")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的门店数量")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			store := utils.GenerateRandomStore()
			if err := repo.CreateStore(store); err != nil {
				slog.Error("无法插入门店", slog.String("error", err.Error()))
				continue
			}
			cnt--
		}
		slog.Info("插入门店成功", slog.Int("count", n-cnt))
	case 2:
		if storeID <= 0 {
			slog.Error("请输入合法的门店 ID")
			return
		}
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomEmployee(cfg.Seed.User.Password, cfg.Email.UserDomain, storeID)
			if err != nil {
				slog.Error("无法生成随机员工", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("无法插入员工", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}
		slog.Info("插入员工成功", slog.Int("count", n-cnt))
	case 3:
		if storeID <= 0 {
			slog.Error("请输入合法的门店 ID")
			return
		}
		if n <= 0 {
			slog.Error("请输入合法的模板数量")
			return
		}

		// 模板的创建人记为该门店的任意一个店长
		employees, err := repo.GetUsersByStore(storeID)
		if err != nil || len(employees) == 0 {
			slog.Error("门店没有任何员工，无法确定模板创建人")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			tpl := utils.GenerateRandomShiftTemplate(storeID, employees[0].ID)
			if err := repo.CreateShiftTemplate(tpl); err != nil {
				slog.Error("无法插入班次模板", slog.String("error", err.Error()))
				continue
			}
			cnt--
		}
		slog.Info("插入班次模板成功", slog.Int("count", n-cnt))
	case 4:
		seed.SeedDemoData(repo, cfg.Seed.User.Password, cfg.Email.UserDomain)
	default:
		slog.Error("指定的操作非法")
	}
}
