package budget

type Type string

const (
	TypeWeekly  Type = "WEEKLY"
	TypeMonthly Type = "MONTHLY"
)

var AllTypes = []Type{
	TypeWeekly,
	TypeMonthly,
}

func (t Type) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}
