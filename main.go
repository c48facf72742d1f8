package main

import (
	"time"

	"dish-search-svc/config"
	httpapi "dish-search-svc/internal/api/http"
	"dish-search-svc/internal/service"
	"dish-search-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("dish-searches")
	defer kafkaWriter.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewRedisSearchCache(rdb, 5*time.Minute)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	limiter := storage.NewRedisRateLimiter(rdb, time.Minute, 100)

	searchSvc := service.NewSearchService(repository, cache, publisher)
	handler := httpapi.NewHandler(searchSvc, config.DevMode())
	router := httpapi.NewRouter(handler, limiter)

	httpapi.StartServer(":"+config.Port(), router)
}
