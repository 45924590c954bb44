package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"wordlimit_backend/internal/config"
	"wordlimit_backend/internal/model"
	"wordlimit_backend/internal/repository"
	"wordlimit_backend/internal/util"
	"wordlimit_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// 宿主页面上下文的识别常量
const (
	assignViewPath       = "/mod/assign/view.php"
	actionEditSubmission = "editsubmission"
	quizAttemptPath      = "/mod/quiz/attempt.php"
	pageTypeQuizAttempt  = "mod-quiz-attempt"
)

const defaultCacheTTL = 60 * time.Second

// quizLimitSource 测验字数限制的查询策略。
// 两个实现对应宿主schema迁移前后：迁移前经答题记录的布局串和单题作答表，
// 迁移后直接联结题槽表。宿主确认迁移完成前，默认走迁移前的实现。
type quizLimitSource interface {
	PageLimits(ctx model.PageContext, quizID uint, page int) ([]int, error)
}

type WordLimitService struct {
	ConfigRepo *repository.AssignConfigRepository
	source     quizLimitSource
	rdb        *redis.Client
	cacheTTL   time.Duration
}

func NewWordLimitService(
	configRepo *repository.AssignConfigRepository,
	attemptRepo *repository.QuizAttemptRepository,
	slotRepo *repository.QuizSlotRepository,
	cfg *config.Config,
	rdb *redis.Client,
) *WordLimitService {
	var source quizLimitSource
	if cfg != nil && cfg.Quiz.LimitSource == config.QuizLimitSourceSlotTable {
		source = slotTableSource{slots: slotRepo}
	} else {
		source = attemptLayoutSource{attempts: attemptRepo}
	}

	ttl := defaultCacheTTL
	if cfg != nil && cfg.Redis.CacheTTLSeconds > 0 {
		ttl = time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second
	}

	return &WordLimitService{
		ConfigRepo: configRepo,
		source:     source,
		rdb:        rdb,
		cacheTTL:   ttl,
	}
}

// Resolve 根据页面上下文解析字数限制。
// 作业在线文本编辑页返回单元素结果，测验答题页返回该页每题一个限制，
// 其余页面返回“不适用”哨兵值。
func (s *WordLimitService) Resolve(ctx model.PageContext) (model.WordLimitResult, error) {
	switch {
	case isAssignEditContext(ctx):
		return s.resolveAssignment(ctx)
	case isQuizAttemptContext(ctx):
		return s.resolveQuiz(ctx)
	default:
		return model.NotApplicable(), nil
	}
}

func isAssignEditContext(ctx model.PageContext) bool {
	return strings.Contains(ctx.Path, assignViewPath) && ctx.Param("action") == actionEditSubmission
}

func isQuizAttemptContext(ctx model.PageContext) bool {
	return strings.Contains(ctx.Path, quizAttemptPath) && ctx.PageType == pageTypeQuizAttempt
}

// resolveAssignment 在线文本提交的单框限制。
// 开关行缺失是硬错误并向上传播；开关未启用时返回 [null]。
func (s *WordLimitService) resolveAssignment(ctx model.PageContext) (model.WordLimitResult, error) {
	enabled, err := s.ConfigRepo.GetValue(ctx.InstanceID, model.SubtypeAssignSubmission, model.PluginOnlineText, model.ConfigWordLimitEnabled)
	if err != nil {
		return model.WordLimitResult{}, err
	}
	if enabled != "1" {
		return model.SingleLimit(nil), nil
	}

	raw, err := s.ConfigRepo.GetValue(ctx.InstanceID, model.SubtypeAssignSubmission, model.PluginOnlineText, model.ConfigWordLimit)
	if err != nil {
		return model.WordLimitResult{}, err
	}
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return model.WordLimitResult{}, fmt.Errorf("%w: %q", util.ErrInvalidLimit, raw)
	}
	return model.SingleLimit(&limit), nil
}

func (s *WordLimitService) resolveQuiz(ctx model.PageContext) (model.WordLimitResult, error) {
	quizID := ctx.InstanceID
	page := ctx.IntParam("page", 0)
	attemptParam := ctx.Param("attempt")

	if limits, ok := s.cachedLimits(quizID, ctx.UserID, attemptParam, page); ok {
		return model.MultipleLimits(limits), nil
	}

	limits, err := s.source.PageLimits(ctx, quizID, page)
	if err != nil {
		return model.WordLimitResult{}, err
	}
	if limits == nil {
		limits = []int{}
	}

	s.storeLimits(quizID, ctx.UserID, attemptParam, page, limits)
	return model.MultipleLimits(limits), nil
}

// 缓存键必须带用户ID：答题记录按 答题ID+用户ID 解析，
// 不区分用户的键会把属主的结果泄露给其他用户
func (s *WordLimitService) cacheKey(quizID, userID uint, attempt string, page int) string {
	return fmt.Sprintf("wordlimit:quiz:%d:user:%d:attempt:%s:page:%d", quizID, userID, attempt, page)
}

func (s *WordLimitService) cachedLimits(quizID, userID uint, attempt string, page int) ([]int, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(context.Background(), s.cacheKey(quizID, userID, attempt, page)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("wordlimit cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var limits []int
	if err := json.Unmarshal([]byte(raw), &limits); err != nil {
		return nil, false
	}
	return limits, true
}

func (s *WordLimitService) storeLimits(quizID, userID uint, attempt string, page int, limits []int) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(limits)
	if err != nil {
		return
	}
	if err := s.rdb.Set(context.Background(), s.cacheKey(quizID, userID, attempt, page), raw, s.cacheTTL).Err(); err != nil {
		logger.Log.Warn("wordlimit cache write failed", zap.Error(err))
	}
}

// attemptLayoutSource 迁移前策略：按 答题ID+用户ID 取答题记录，
// 解码布局串定位本页题槽，再经单题作答表联结论述题配置。
type attemptLayoutSource struct {
	attempts *repository.QuizAttemptRepository
}

func (src attemptLayoutSource) PageLimits(ctx model.PageContext, quizID uint, page int) ([]int, error) {
	attemptID := util.MustParseUint(ctx.Param("attempt"))
	if attemptID == 0 {
		return nil, nil
	}

	attempt, err := src.attempts.FindByIDAndUser(attemptID, ctx.UserID)
	if errors.Is(err, util.ErrAttemptNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// 答题记录必须属于当前页面的测验实例
	if attempt.QuizID != quizID {
		return nil, nil
	}

	slots := DecodeLayout(attempt.Layout)[page]
	if len(slots) == 0 {
		return nil, nil
	}
	// 输出按题槽升序，与布局串中的出现顺序无关
	sort.Ints(slots)

	questionAttempts, err := src.attempts.QuestionAttemptsBySlots(attempt.UniqueID, slots)
	if err != nil {
		return nil, err
	}

	bySlot := make(map[int]model.QuestionAttempt, len(questionAttempts))
	questionIDs := make([]uint, 0, len(questionAttempts))
	for _, qa := range questionAttempts {
		bySlot[qa.Slot] = qa
		questionIDs = append(questionIDs, qa.QuestionID)
	}

	options, err := src.attempts.EssayOptionsByQuestionIDs(questionIDs)
	if err != nil {
		return nil, err
	}
	maxByQuestion := make(map[uint]int, len(options))
	for _, o := range options {
		if o.MaxWordLimit != nil {
			maxByQuestion[o.QuestionID] = *o.MaxWordLimit
		}
	}

	// 缺单题作答或未配置上限的题槽直接省略，不补零
	var limits []int
	for _, slot := range slots {
		qa, ok := bySlot[slot]
		if !ok {
			continue
		}
		if max, ok := maxByQuestion[qa.QuestionID]; ok {
			limits = append(limits, max)
		}
	}
	return limits, nil
}

// slotTableSource 迁移后策略：按 测验ID+页码 直接联结题槽表取限制
type slotTableSource struct {
	slots *repository.QuizSlotRepository
}

func (src slotTableSource) PageLimits(_ model.PageContext, quizID uint, page int) ([]int, error) {
	return src.slots.EssayLimitsByQuizPage(quizID, page)
}

// DecodeLayout 将答题布局串解码为 页码→题槽列表 的映射。
// 0 表示翻页且不产出题槽，题槽从第0页起按出现顺序归入当前页。
// 空串或不含逗号的串解码为空映射，与宿主的历史行为保持一致。
func DecodeLayout(layout string) map[int][]int {
	pages := make(map[int][]int)
	if !strings.Contains(layout, ",") {
		return pages
	}

	page := 0
	pages[page] = []int{}
	for _, token := range strings.Split(layout, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		if id == 0 {
			page++
			pages[page] = []int{}
			continue
		}
		pages[page] = append(pages[page], id)
	}
	return pages
}
