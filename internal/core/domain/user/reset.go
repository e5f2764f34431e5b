package user

type ResetCode string

type ResetCodeGenerator interface {
	GenerateResetCode() ResetCode
}
