package database

import "errors"

// ErrTaskNotFound indica que a tarefa não existe ou não pertence ao usuário.
// Os dois casos são indistinguíveis de propósito, para não vazar a
// existência de tarefas de outros usuários.
var ErrTaskNotFound = errors.New("tarefa não encontrada")
