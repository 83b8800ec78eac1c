package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/pkg/logger"
)

const (
	recommendScript = "get_recommendations.py"
	popularScript   = "get_popular.py"

	codeOK = 200
)

// ProcessRecommender 每次调用启动一个外部推荐脚本，并解析其标准输出中的 JSON
type ProcessRecommender struct {
	command string
	dir     string
	timeout time.Duration
}

func NewProcessRecommender(command, dir string, timeout time.Duration) *ProcessRecommender {
	return &ProcessRecommender{command: command, dir: dir, timeout: timeout}
}

// scriptResponse 脚本输出：{"code": 200, "message": "...", "data": [1, 2, 3]}
type scriptResponse struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    []interface{} `json:"data"`
}

func (p *ProcessRecommender) Recommend(ctx context.Context, userID int64, method string, topN int) ([]int64, error) {
	return p.run(ctx, recommendScript,
		strconv.FormatInt(userID, 10), method, strconv.Itoa(topN))
}

func (p *ProcessRecommender) Popular(ctx context.Context, topN int) ([]int64, error) {
	return p.run(ctx, popularScript, strconv.Itoa(topN))
}

func (p *ProcessRecommender) run(ctx context.Context, script string, args ...string) ([]int64, error) {
	parent := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	argv := append([]string{filepath.Join(p.dir, script)}, args...)
	cmd := exec.CommandContext(ctx, p.command, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// 超时被杀后，子进程遗留的输出管道最多再等一秒
	cmd.WaitDelay = time.Second

	logger.Debug("exec recommender", zap.String("cmd", p.command+" "+strings.Join(argv, " ")))
	start := time.Now()
	if err := cmd.Run(); err != nil {
		// 调用方取消或超时：带上 ctx 错误，熔断器据此不计失败
		if parent.Err() != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRecommenderFailed, script, parent.Err())
		}
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrRecommenderFailed, script, err,
			strings.TrimSpace(stderr.String()))
	}
	if stderr.Len() > 0 {
		logger.Warn("recommender stderr",
			zap.String("script", script), zap.String("stderr", strings.TrimSpace(stderr.String())))
	}

	out := bytes.TrimSpace(stdout.Bytes())
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s: empty output", ErrRecommenderFailed, script)
	}

	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	var resp scriptResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %s: decode output: %v", ErrRecommenderFailed, script, err)
	}
	if resp.Code != codeOK {
		return nil, fmt.Errorf("%w: %s: code %d: %s", ErrRecommenderFailed, script, resp.Code, resp.Message)
	}

	ids := numericIDs(resp.Data)
	logger.Debug("recommender done",
		zap.String("script", script), zap.Int("count", len(ids)), zap.Duration("took", time.Since(start)))
	return ids, nil
}

// numericIDs 保持顺序，跳过非数字项；小数按截断取整
func numericIDs(data []interface{}) []int64 {
	ids := make([]int64, 0, len(data))
	for _, item := range data {
		n, ok := item.(json.Number)
		if !ok {
			continue
		}
		if v, err := n.Int64(); err == nil {
			ids = append(ids, v)
			continue
		}
		if f, err := n.Float64(); err == nil {
			ids = append(ids, int64(f))
		}
	}
	return ids
}
