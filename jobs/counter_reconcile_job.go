package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// CounterReconcileJob periodically rewrites the denormalized likes_count and
// comments_count columns on posts from the live like/comment rows. The feed
// read path already computes counts live; this job bounds how far the stored
// counters can drift for any reader that consults them directly.
type CounterReconcileJob struct {
	db     *gorm.DB
	ticker *time.Ticker
	done   chan bool
}

func NewCounterReconcileJob(db *gorm.DB, interval time.Duration) *CounterReconcileJob {
	return &CounterReconcileJob{
		db:     db,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the reconcile loop. Runs once immediately, then on schedule.
func (j *CounterReconcileJob) Start() {
	log.Println("Counter reconcile job started")

	go func() {
		j.reconcile()

		for {
			select {
			case <-j.ticker.C:
				j.reconcile()
			case <-j.done:
				log.Println("Counter reconcile job stopped")
				return
			}
		}
	}()
}

// Stop halts the reconcile loop.
func (j *CounterReconcileJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *CounterReconcileJob) reconcile() {
	result := j.db.Exec(`
UPDATE posts SET
	likes_count = (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id),
	comments_count = (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)
WHERE likes_count != (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)
   OR comments_count != (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)`)

	if result.Error != nil {
		log.Printf("Counter reconcile failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Counter reconcile corrected %d posts", result.RowsAffected)
	}
}
