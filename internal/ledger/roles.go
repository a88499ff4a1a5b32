package ledger

import "github.com/iudanet/stocktake/internal/models"

// Проверки полномочий выполняются один раз на границе сервиса,
// а не переоткрываются в каждом месте вызова.

// canMutate сообщает, принимает ли сессия изменения леджера.
// Заблокированная сессия не принимает ничего и ни от кого; в остальных
// статусах писать может любой участник, включая первый контакт.
func canMutate(session *models.Session) bool {
	return session.Mutable()
}

// canFinalize сообщает, может ли actor финализировать сессию или
// импортировать пакеты участников. Это полномочие только хоста.
func canFinalize(actorID string, session *models.Session) bool {
	return actorID == session.HostID
}

// roleFor вычисляет роль участника по отношению к сессии.
func roleFor(actorID string, session *models.Session) models.Role {
	if actorID == session.HostID {
		return models.RoleHost
	}
	return models.RoleParticipant
}
