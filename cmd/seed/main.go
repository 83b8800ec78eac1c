package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

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

func mustDo(err error) {
	if err != nil {
		panic(err)
	}
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// 一级类目 -> 二级类目
var catalog = []struct {
	name     string
	children []string
}{
	{"中餐", []string{"川菜", "粤菜", "湘菜", "东北菜"}},
	{"西餐", []string{"意面", "牛排", "沙拉"}},
	{"甜品", []string{"蛋糕", "冰淇淋", "糖水"}},
	{"小吃", []string{"烧烤", "煎饼", "串串"}},
}

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	mustDo(database.Migrate(db, model.All()...))
	ctx := context.Background()

	users := envInt("USERS", 200)
	tweets := envInt("TWEETS", 500)
	likes := envInt("LIKES", 20)

	t0 := time.Now()

	// 类目
	type typeRef struct {
		pid  int64
		cids []int64
	}
	refs := make([]typeRef, 0, len(catalog))
	for _, c := range catalog {
		root := model.TweetType{Name: c.name}
		mustDo(db.Create(&root).Error)
		ref := typeRef{pid: root.ID}
		for _, name := range c.children {
			child := model.TweetType{Name: name, ParentID: &root.ID}
			mustDo(db.Create(&child).Error)
			ref.cids = append(ref.cids, child.ID)
		}
		refs = append(refs, ref)
	}

	// 推文
	rows := make([]model.Tweet, tweets)
	for i := range rows {
		ref := refs[rand.IntN(len(refs))]
		n := 1 + rand.IntN(len(ref.cids))
		cids := make([]string, 0, n)
		for _, j := range rand.Perm(len(ref.cids))[:n] {
			cids = append(cids, strconv.FormatInt(ref.cids[j], 10))
		}
		rows[i] = model.Tweet{
			TypePID:  ref.pid,
			TypeCIDs: strings.Join(cids, ","),
			Title:    fmt.Sprintf("美食分享 #%d", i+1),
			Author:   fmt.Sprintf("作者%d", i%37),
			Describe: "seed",
		}
	}
	mustDo(db.CreateInBatches(&rows, 500).Error)

	// 用户
	clients := make([]model.ClientUser, users)
	for i := range clients {
		clients[i] = model.ClientUser{OpenID: "seed-" + uuid.NewString(), NickName: fmt.Sprintf("微信用户%d", i+1)}
	}
	mustDo(db.CreateInBatches(&clients, 500).Error)

	// 点赞走服务层，计数与记录保持一致
	records := repository.NewRecordRepository(db)
	interactions := service.NewInteractionService(records, repository.NewTweetRepository(db), nil)
	liked := 0
	for _, u := range clients {
		for _, k := range rand.Perm(len(rows))[:min(likes, len(rows))] {
			mustDo(interactions.Toggle(ctx, u.ID, rows[k].ID, model.RecordLike, service.ActionAdd))
			liked++
		}
	}

	admins := service.NewAdminService(repository.NewEndUserRepository(db), nil)
	if err := admins.Create(ctx, &model.EndUser{UserName: "admin", NickName: "管理员"}, "admin123"); err != nil {
		fmt.Printf("admin user: %v\n", err)
	}

	fmt.Printf("types=%d tweets=%d users=%d likes=%d in %v\n",
		len(catalog), len(rows), len(clients), liked, time.Since(t0))
}
