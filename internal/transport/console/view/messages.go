package view

const (
	Welcome     = "Welcome to the assistant bot!"
	GoodBye     = "Good bye!"
	EmptyInput  = "Error: Please enter a command."
	Unknown     = "Invalid command."
	HelloAnswer = "How can I help you?"

	ContactNotFound = "Contact not found."
	NoContacts      = "No contacts added yet"
	NameMissing     = "Please provide a name."
)

// Телефоны
const (
	AddMissingArguments         = "Please provide both name and phone number."
	ContactAdded                = "Contact added."
	ContactUpdated              = "Contact updated."
	ChangeMissingArguments      = "Please provide name, old phone number, and new phone number."
	PhoneChangedTemplate        = "Phone %s changed to %s."
	PhoneNotFoundTemplate       = "Phone %s not found."
	PhonesTemplate              = "%s's phones: %s"
	PhonesSeparator             = ", "
	RemovePhoneMissingArguments = "Please provide both name and phone number to remove."
	PhoneRemovedTemplate        = "Phone %s removed."
	RecordDeletedTemplate       = "Record for %s deleted."
)

// Дни рождения
const (
	AddBirthdayMissingArguments = "Please provide both name and birthday date in the format DD.MM.YYYY."
	BirthdayAddedTemplate       = "Birthday for %s added."
	BirthdayUpdatedTemplate     = "Birthday for %s updated."
	BirthdayTemplate            = "%s's birthday: %s"
	NoBirthdayTemplate          = "%s has no birthday set."
	UpcomingBirthdayTemplate    = "%s - %s"
	NoUpcomingBirthdays         = "No upcoming birthdays."
)
