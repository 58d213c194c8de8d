package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Поля контакта
	InvalidPhoneNumber failure.ErrorCode = "InvalidPhoneNumber"
	InvalidBirthday    failure.ErrorCode = "InvalidBirthday"
	InvalidContactName failure.ErrorCode = "InvalidContactName"

	// Хранилище книги
	StorageFailure      failure.ErrorCode = "StorageFailure"      // Ошибка чтения/записи файла
	UnsupportedSnapshot failure.ErrorCode = "UnsupportedSnapshot" // Файл от другой версии программы
	CorruptedSnapshot   failure.ErrorCode = "CorruptedSnapshot"   // Файл не декодируется
)
