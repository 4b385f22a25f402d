package services

import (
	"encoding/json"
	"sync"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/repositories"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/logger"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/metrics"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/workerpool"
)

// background is the bounded pool for fire-and-forget side effects (audit
// rows, confirmation email). A full pool drops the task rather than blocking
// a mutation.
var (
	background     *workerpool.Pool
	backgroundOnce sync.Once
)

func backgroundPool() *workerpool.Pool {
	backgroundOnce.Do(func() {
		background = workerpool.New(4)
	})
	return background
}

// ActivityService appends audit-log rows. Recording is asynchronous and
// best-effort: a failure here never affects the mutation that triggered it.
type ActivityService struct {
	repo *repositories.ActivityRepository
}

func NewActivityService() *ActivityService {
	return &ActivityService{repo: repositories.NewActivityRepository()}
}

// Record queues one audit row. actorID is nil for guest actions. metadata is
// marshalled to JSON; unmarshallable values are recorded without metadata.
func (s *ActivityService) Record(actorID *uint, action, message string, metadata interface{}) {
	var meta string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			meta = string(b)
		}
	}

	row := models.Activity{ActorID: actorID, Action: action, Message: message, Metadata: meta}

	err := backgroundPool().Submit(func() {
		if err := s.repo.Create(&row); err != nil {
			logger.Warn("audit: write failed", "action", action, "error", err)
		}
	})
	if err != nil {
		metrics.AuditDropped.Inc()
		logger.Warn("audit: entry dropped", "action", action, "error", err)
	}
}

// List returns one page of audit rows.
func (s *ActivityService) List(page, limit int) ([]models.Activity, orm.Pagination, error) {
	return s.repo.All(page, limit)
}
