package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/d60-Lab/food-share-server/config"
	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/service"
	"github.com/d60-Lab/food-share-server/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

// 对比浏览记录同步写入与异步队列写入的接口耗时
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	if err := database.Migrate(db, model.All()...); err != nil {
		panic(err)
	}

	N := envInt("N", 10000)
	CONC := envInt("CONC", 8)
	PAGE := envInt("PAGE", 50)

	hot := model.Tweet{Title: "browsebench"}
	if err := db.Create(&hot).Error; err != nil {
		panic(err)
	}

	records := repository.NewRecordRepository(db)
	tweets := repository.NewTweetRepository(db)
	recorder := service.NewBrowseRecorder(records, N)
	stop := recorder.Start(4)
	async := service.NewInteractionService(records, tweets, recorder)
	sync := service.NewInteractionService(records, tweets, nil)
	ctx := context.Background()

	landing := make([]time.Duration, 0, N)
	doneMetrics := make(chan struct{})
	metricsDone := make(chan struct{})
	go func() {
		defer close(metricsDone)
		for {
			select {
			case d := <-recorder.Metrics():
				landing = append(landing, d)
			case <-doneMetrics:
				return
			}
		}
	}()

	maxQ := 0
	quitSample := make(chan struct{})
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if q := recorder.QueueLen(); q > maxQ {
					maxQ = q
				}
			case <-quitSample:
				return
			}
		}
	}()

	run := func(svc service.InteractionService, userBase int64) ([]time.Duration, time.Duration) {
		feed := make(chan int64, N)
		for i := 0; i < N; i++ {
			feed <- userBase + int64(i)
		}
		close(feed)
		out := make(chan time.Duration, N)
		done := make(chan struct{}, CONC)
		t0 := time.Now()
		for w := 0; w < CONC; w++ {
			go func() {
				for uid := range feed {
					st := time.Now()
					_ = svc.Browse(ctx, uid, hot.ID)
					out <- time.Since(st)
				}
				done <- struct{}{}
			}()
		}
		for w := 0; w < CONC; w++ {
			<-done
		}
		total := time.Since(t0)
		close(out)
		recs := make([]time.Duration, 0, N)
		for d := range out {
			recs = append(recs, d)
		}
		return recs, total
	}

	asyncRecs, asyncDur := run(async, 1)
	close(quitSample)

	drainStart := time.Now()
	_ = stop(context.Background())
	drainDur := time.Since(drainStart)
	close(doneMetrics)
	<-metricsDone

	syncRecs, syncDur := run(sync, int64(N)+1)

	q0 := time.Now()
	_, _ = records.ListRows(ctx, 1, model.RecordBrowse, 0, PAGE)
	listDur := time.Since(q0)

	var got model.Tweet
	_ = db.First(&got, hot.ID).Error

	fmt.Printf("N=%d, CONC=%d, PAGE=%d\n", N, CONC, PAGE)
	fmt.Printf("Async browse total: %v, p50: %v, p95: %v, p99: %v\n",
		asyncDur, pct(asyncRecs, 0.50), pct(asyncRecs, 0.95), pct(asyncRecs, 0.99))
	fmt.Printf("Sync browse total: %v, p50: %v, p95: %v, p99: %v\n",
		syncDur, pct(syncRecs, 0.50), pct(syncRecs, 0.95), pct(syncRecs, 0.99))
	fmt.Printf("Landing: samples=%d, p50=%v, p95=%v, p99=%v, maxQueue=%d, drain=%v\n",
		len(landing), pct(landing, 0.50), pct(landing, 0.95), pct(landing, 0.99), maxQ, drainDur)
	fmt.Printf("List records(%d): %v, browse_num=%d\n", PAGE, listDur, got.BrowseNum)
}
