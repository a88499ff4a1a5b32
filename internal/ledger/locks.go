package ledger

import "sync"

// sessionLocks выдаёт мьютекс на сессию. Сериализует запись снапшота в
// конце Commit и Finalize: защита только от lost update самого снапшота,
// корректность итогов от порядка не зависит (они всегда выводимы из лога).
// Замки не освобождаются: сессий за время жизни процесса немного.
type sessionLocks struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// get возвращает мьютекс сессии, создавая его при первом обращении.
func (l *sessionLocks) get(sessionID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[sessionID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sessionID] = m
	}
	return m
}
