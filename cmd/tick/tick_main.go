package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	dominionapp "Dominion/internal/dominion/app"
	"Dominion/internal/dominion/calc"
	dominiondomain "Dominion/internal/dominion/domain"
	dominionrepo "Dominion/internal/dominion/infra/repo"
	"Dominion/internal/kit/logx"
	rankingapp "Dominion/internal/ranking/app"
	rankingdomain "Dominion/internal/ranking/domain"
	rankingrepo "Dominion/internal/ranking/infra/repo"
	"Dominion/internal/shared/infrastructure/db"
	"Dominion/internal/shared/logs"
	"Dominion/internal/shared/serverconfig"
)

func main() {
	serverconfig.Load()
	if err := logs.Init("tick", serverconfig.Conf.Log); err != nil {
		panic(err)
	}
	logs.Info("conf", zap.Any("conf", serverconfig.Conf))

	gormDB, err := db.Open(serverconfig.Conf.MySQL)
	if err != nil {
		logs.Fatal("open db failed", zap.Error(err))
	}
	models := append(dominiondomain.Models(), rankingdomain.Models()...)
	if err := gormDB.AutoMigrate(models...); err != nil {
		logs.Fatal("automigrate failed", zap.Error(err))
	}

	log := logx.NewZapLogger(logs.Logger())
	tickCfg := serverconfig.Conf.Tick

	txRunner := db.NewTxRunner(gormDB)
	roundRepo := dominionrepo.NewRoundRepo(gormDB)
	dominionRepo := dominionrepo.NewDominionRepo(gormDB)
	queueRepo := dominionrepo.NewQueueRepo(gormDB)
	spellRepo := dominionrepo.NewSpellRepo(gormDB)
	historyRepo := dominionrepo.NewHistoryRepo(gormDB)
	rankingRepo := rankingrepo.NewRankingRepo(gormDB)
	realmRepo := rankingrepo.NewRealmRepo(gormDB)

	landCalc := calc.NewLand()
	calcs := dominionapp.Calculators{
		Production: calc.NewProduction(),
		Population: calc.NewPopulation(landCalc),
		Casualties: calc.NewCasualties(),
		Effects:    calc.NewEffects(spellRepo),
	}

	rankingService := rankingapp.NewRankingService(
		rankingRepo, dominionRepo, realmRepo,
		landCalc, calc.NewNetworth(landCalc),
		tickCfg.RankingBatchSize, log,
	)
	tickService := dominionapp.NewTickService(
		txRunner, roundRepo, dominionRepo, queueRepo, historyRepo,
		calcs, rankingService, tickCfg.DominionBatchSize, log,
	)
	scheduler := dominionapp.NewScheduler(tickService, tickCfg.Interval, tickCfg.DailyHour, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logs.Error("scheduler exited", zap.Error(err))
		return
	}
	logs.Info("收到退出信号，调度循环已停止")
}
