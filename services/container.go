package services

import "github.com/linskybing/syncbridge-go/repositories"

type Services struct {
	Audit       *AuditService
	File        *FileService
	Form        *FormService
	Function    *FunctionService
	Message     *MessageService
	NonFunction *NonFunctionService
	Reminder    *ReminderService
	User        *UserService
}

func New(repos *repositories.Repos, broadcaster Broadcaster) *Services {
	return &Services{
		Audit:       NewAuditService(repos),
		File:        NewFileService(repos),
		Form:        NewFormService(repos, broadcaster),
		Function:    NewFunctionService(repos),
		Message:     NewMessageService(repos, broadcaster),
		NonFunction: NewNonFunctionService(repos),
		Reminder:    NewReminderService(repos),
		User:        NewUserService(repos),
	}
}
