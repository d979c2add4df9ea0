package repositories

type Repos struct {
	User        UserRepo
	License     LicenseRepo
	Form        FormRepo
	Function    FunctionRepo
	NonFunction NonFunctionRepo
	Block       BlockRepo
	Message     MessageRepo
	File        FileRepo
	Audit       AuditRepo
}

func New() *Repos {
	return &Repos{
		User:        &DBUserRepo{},
		License:     &DBLicenseRepo{},
		Form:        &DBFormRepo{},
		Function:    &DBFunctionRepo{},
		NonFunction: &DBNonFunctionRepo{},
		Block:       &DBBlockRepo{},
		Message:     &DBMessageRepo{},
		File:        &DBFileRepo{},
		Audit:       &DBAuditRepo{},
	}
}
