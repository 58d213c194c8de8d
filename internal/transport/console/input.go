package console

import "strings"

// ParseInput делит строку по пробельным символам: первое слово в нижнем
// регистре — команда, остальные — аргументы. ok == false для пустой строки.
func ParseInput(line string) (command string, args []string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}
