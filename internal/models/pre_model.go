package models

// PreModel Промежуточный результат проверки: по одной записи на настраиваемое поле.
// Поля проверяются независимо, ошибки не прерывают проверку остальных.
type PreModel struct {
	Port      ParameterSource[Result[uint16]]
	DistDir   ParameterSource[Result[string]]
	URIPrefix ParameterSource[Result[string]]
}

// OK Все поля прошли проверку.
func (p PreModel) OK() bool {
	return p.Port.Value.OK() && p.DistDir.Value.OK() && p.URIPrefix.Value.OK()
}

// Failures Количество полей с ошибкой.
func (p PreModel) Failures() int {
	n := 0
	for _, ok := range []bool{p.Port.Value.OK(), p.DistDir.Value.OK(), p.URIPrefix.Value.OK()} {
		if !ok {
			n++
		}
	}

	return n
}
