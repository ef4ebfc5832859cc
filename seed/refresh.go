package seed

import (
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrZeroInterval = errors.New("seed: refresh interval must be positive")

// RefreshStore reseeds the store every interval until stop is called.
// stop only cancels future ticks; a reseed already running completes.
// Calling RefreshStore twice schedules two independent refreshers.
func RefreshStore(seeder *Seeder, interval time.Duration) (stop func(), err error) {
	if interval <= 0 {
		return nil, ErrZeroInterval
	}

	var (
		done = make(chan struct{})
		once sync.Once
	)

	go func() {
		ticker := time.NewTicker(interval)
		defer func() {
			ticker.Stop()
			log.Info("[seed] refresher stopped")
		}()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				if err := seeder.SeedFromConfig(); err != nil {
					log.Errorf("[seed] refresh failed: %v", err)
				}
			}
		}
	}()

	log.Infof("[seed] refreshing store every %s", interval)

	return func() {
		once.Do(func() { close(done) })
	}, nil
}
