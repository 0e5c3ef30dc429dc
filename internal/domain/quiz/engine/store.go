package engine

import (
	"context"
	"log"
	"sync"
	"time"
)

// entry хранит сессию пользователя и мьютекс, сериализующий операции этого пользователя
type entry struct {
	mu      sync.Mutex
	session *Session
	evicted bool
}

// Store таблица сессий user_id -> Session.
// Операции одного пользователя выполняются строго по очереди, разные пользователи не блокируют друг друга.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewStore создаёт пустое хранилище сессий
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// acquire возвращает запись пользователя с захваченным мьютексом.
// Если записи нет и create == false, возвращает nil. Вызывающий обязан вызвать e.mu.Unlock().
func (s *Store) acquire(userID string, create bool) *entry {
	for {
		s.mu.Lock()
		e, ok := s.entries[userID]
		if !ok {
			if !create {
				s.mu.Unlock()
				return nil
			}
			e = &entry{}
			s.entries[userID] = e
		}
		s.mu.Unlock()

		e.mu.Lock()
		if !e.evicted {
			return e
		}
		// запись удалили, пока мы ждали мьютекс
		e.mu.Unlock()
	}
}

// Len количество сессий в хранилище
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Evict удаляет сессии, к которым не обращались с момента before. Занятые сессии пропускаются.
func (s *Store) Evict(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.session != nil && e.session.LastSeen.Before(before) {
			e.evicted = true
			delete(s.entries, userID)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Janitor периодически удаляет сессии, простаивающие дольше ttl. Завершается при отмене контекста.
func (s *Store) Janitor(ctx context.Context, ttl, interval time.Duration, now func() time.Time) {
	if ttl <= 0 {
		return
	}
	if interval <= 0 {
		interval = ttl
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Evict(now().Add(-ttl)); n > 0 {
				log.Printf("Evicted %d idle quiz sessions", n)
			}
		}
	}
}
