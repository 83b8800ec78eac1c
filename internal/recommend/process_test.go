package recommend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScripts 用 sh 脚本冒充推荐进程，脚本把参数写到 args.txt
func writeScripts(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	script := "echo \"$@\" > \"$(dirname \"$0\")/args.txt\"\n" + body + "\n"
	for _, name := range []string{recommendScript, popularScript} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0o644))
	}
	return dir
}

func readArgs(t *testing.T, dir string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	require.NoError(t, err)
	return string(b)
}

func TestProcessRecommender_PreservesOrder(t *testing.T) {
	dir := writeScripts(t, `echo '{"code":200,"message":"success","data":[9,4,1]}'`)
	p := NewProcessRecommender("sh", dir, 5*time.Second)

	ids, err := p.Recommend(context.Background(), 7, MethodCF, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 4, 1}, ids)
	assert.Equal(t, "7 cf 5\n", readArgs(t, dir))
}

func TestProcessRecommender_PopularArgs(t *testing.T) {
	dir := writeScripts(t, `echo '{"code":200,"data":[3,2]}'`)
	p := NewProcessRecommender("sh", dir, 5*time.Second)

	ids, err := p.Popular(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2}, ids)
	assert.Equal(t, "20\n", readArgs(t, dir))
}

func TestProcessRecommender_SkipsNonNumeric(t *testing.T) {
	dir := writeScripts(t, `echo '{"code":200,"data":[3,"x",2.0,null,{"id":1},5]}'`)
	p := NewProcessRecommender("sh", dir, 5*time.Second)

	ids, err := p.Recommend(context.Background(), 1, MethodHybrid, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 5}, ids)
}

func TestProcessRecommender_EmptyData(t *testing.T) {
	dir := writeScripts(t, `echo '{"code":200,"data":[]}'`)
	p := NewProcessRecommender("sh", dir, 5*time.Second)

	ids, err := p.Recommend(context.Background(), 1, MethodHybrid, 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestProcessRecommender_Failures(t *testing.T) {
	cases := map[string]string{
		"non-zero exit": `echo '{"code":200,"data":[1]}'; exit 3`,
		"malformed":     `echo 'not json'`,
		"empty output":  `true`,
		"bad code":      `echo '{"code":500,"message":"boom","data":[1]}'`,
		"stderr only":   `echo oops >&2; exit 1`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := NewProcessRecommender("sh", writeScripts(t, body), 5*time.Second)
			_, err := p.Recommend(context.Background(), 1, MethodCF, 5)
			assert.ErrorIs(t, err, ErrRecommenderFailed)
		})
	}
}

func TestProcessRecommender_MissingScript(t *testing.T) {
	p := NewProcessRecommender("sh", t.TempDir(), 5*time.Second)
	_, err := p.Popular(context.Background(), 5)
	assert.ErrorIs(t, err, ErrRecommenderFailed)
}

func TestProcessRecommender_Timeout(t *testing.T) {
	dir := writeScripts(t, `exec sleep 5`)
	p := NewProcessRecommender("sh", dir, 100*time.Millisecond)

	start := time.Now()
	_, err := p.Recommend(context.Background(), 1, MethodCF, 5)
	assert.ErrorIs(t, err, ErrRecommenderFailed)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestProcessRecommender_CallerDeadlineKeepsBreakerClosed(t *testing.T) {
	dir := writeScripts(t, `sleep 0.3; echo '{"code":200,"data":[4,2]}'`)
	b := NewBreaker(NewProcessRecommender("sh", dir, 5*time.Second), BreakerConfig{FailureThreshold: 3, Timeout: time.Minute})

	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		_, err := b.Recommend(ctx, 1, MethodCF, 5)
		cancel()
		require.ErrorIs(t, err, ErrRecommenderFailed)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	}
	assert.Equal(t, gobreaker.StateClosed.String(), b.State())

	ids, err := b.Recommend(context.Background(), 1, MethodCF, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2}, ids)
	assert.Equal(t, gobreaker.StateClosed.String(), b.State())
}

func TestNormalizeMethod(t *testing.T) {
	for _, m := range []string{"collaborative", "cf", "content", "cb", "hybrid", "popular"} {
		assert.Equal(t, m, NormalizeMethod(m))
	}
	assert.Equal(t, MethodHybrid, NormalizeMethod(""))
	assert.Equal(t, MethodHybrid, NormalizeMethod("CF"))
	assert.Equal(t, MethodHybrid, NormalizeMethod("random"))
}
