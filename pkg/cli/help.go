package cli

// CommandHelp represents the structure of help information for a specific command.
type CommandHelp struct {
	Scope     string
	Operation string
	ShortDesc string
	LongDesc  string
	Syntax    string
	Arguments []string
	Examples  []string
}

// commandHelps is a slice of CommandHelp structs containing help information for all commands.
var commandHelps = []CommandHelp{
	{
		Scope:     "file",
		Operation: "open",
		ShortDesc: "Open a storyline file",
		LongDesc:  "Parses a storyline XML file and loads its storylines, sorted by id. The current collection is replaced only when the file parses cleanly.",
		Syntax:    "file open <path>",
		Arguments: []string{"path: The storyline XML file to open"},
		Examples:  []string{"file open data/storylines.xml"},
	},
	{
		Scope:     "file",
		Operation: "save",
		ShortDesc: "Save the collection to a file",
		LongDesc:  "Serializes the collection back to storyline XML with a fresh fileversion stamp. Without a path, the file it was loaded from is overwritten.",
		Syntax:    "file save [path]",
		Arguments: []string{"path: (Optional) Destination file"},
		Examples:  []string{"file save", "file save out/storylines.xml"},
	},
	{
		Scope:     "file",
		Operation: "info",
		ShortDesc: "Show collection file details",
		LongDesc:  "Shows the current file path, its fileversion stamp and the storyline count.",
		Syntax:    "file info",
		Examples:  []string{"file info"},
	},
	{
		Scope:     "file",
		Operation: "recent",
		ShortDesc: "List recently opened files",
		LongDesc:  "Lists the files the current profile opened most recently.",
		Syntax:    "file recent",
		Examples:  []string{"file recent"},
	},
	{
		Scope:     "storyline",
		Operation: "add",
		ShortDesc: "Add a new storyline",
		LongDesc:  "Appends a new storyline with one empty article and selects it. Without an id, the next free numeric id is used.",
		Syntax:    "storyline add [id]",
		Arguments: []string{"id: (Optional) The id for the new storyline"},
		Examples:  []string{"storyline add", "storyline add 42"},
	},
	{
		Scope:     "storyline",
		Operation: "update",
		ShortDesc: "Set a storyline attribute",
		LongDesc:  "Sets one attribute of the selected storyline. An empty value clears the attribute so it is not written on save.",
		Syntax:    "storyline update <attribute> <value>",
		Arguments: []string{"attribute: The attribute name", "value: The new value, quoted if it contains spaces"},
		Examples:  []string{"storyline update random_frequency 500", "storyline update only_in_season 1"},
	},
	{
		Scope:     "storyline",
		Operation: "delete",
		ShortDesc: "Delete the selected storyline",
		LongDesc:  "Removes the selected storyline from the collection. Other storylines keep their ids.",
		Syntax:    "storyline delete",
		Examples:  []string{"storyline delete"},
	},
	{
		Scope:     "storyline",
		Operation: "select",
		ShortDesc: "Select a storyline",
		LongDesc:  "Selects a storyline by id, or by list index when no id matches.",
		Syntax:    "storyline select <id|index>",
		Examples:  []string{"storyline select 42", "storyline select 0"},
	},
	{
		Scope:     "storyline",
		Operation: "list",
		ShortDesc: "List all storylines",
		LongDesc:  "Lists every storyline with its article and participant counts. The selected storyline is marked.",
		Syntax:    "storyline list",
		Examples:  []string{"storyline list"},
	},
	{
		Scope:     "storyline",
		Operation: "find",
		ShortDesc: "Find storylines by id",
		LongDesc:  "Lists storylines whose id contains the given text.",
		Syntax:    "storyline find <query>",
		Examples:  []string{"storyline find 10"},
	},
	{
		Scope:     "storyline",
		Operation: "show",
		ShortDesc: "Show the selected storyline",
		LongDesc:  "Shows the selected storyline's populated attributes, participants and articles.",
		Syntax:    "storyline show",
		Examples:  []string{"storyline show"},
	},
	{
		Scope:     "article",
		Operation: "add",
		ShortDesc: "Add an article",
		LongDesc:  "Appends a new empty article to the selected storyline and selects it.",
		Syntax:    "article add",
		Examples:  []string{"article add"},
	},
	{
		Scope:     "article",
		Operation: "update",
		ShortDesc: "Set an article field",
		LongDesc:  "Sets subject, text or injury on the selected article; any other field name is treated as a modifier attribute. An empty value clears a modifier.",
		Syntax:    "article update <field> <value>",
		Arguments: []string{"field: subject, text, injury, or a modifier name", "value: The new value, quoted if it contains spaces"},
		Examples:  []string{"article update subject \"Trade rumors swirl\"", "article update morale_team -2"},
	},
	{
		Scope:     "article",
		Operation: "delete",
		ShortDesc: "Delete an article",
		LongDesc:  "Removes the selected article, or the one at the given index. The last remaining article of a storyline cannot be deleted.",
		Syntax:    "article delete [index]",
		Examples:  []string{"article delete", "article delete 1"},
	},
	{
		Scope:     "article",
		Operation: "select",
		ShortDesc: "Select an article",
		LongDesc:  "Selects an article of the selected storyline by index.",
		Syntax:    "article select <index>",
		Examples:  []string{"article select 0"},
	},
	{
		Scope:     "article",
		Operation: "show",
		ShortDesc: "Show the selected article",
		LongDesc:  "Shows the selected article's texts and populated modifiers.",
		Syntax:    "article show",
		Examples:  []string{"article show"},
	},
	{
		Scope:     "article",
		Operation: "preset",
		ShortDesc: "Apply a modifier preset",
		LongDesc:  "Applies a named preset from the catalog to the selected article, setting all of its modifier values at once.",
		Syntax:    "article preset <category> <preset_name>",
		Examples:  []string{"article preset MODIFIER slump"},
	},
	{
		Scope:     "article",
		Operation: "renumber",
		ShortDesc: "Renumber link tags",
		LongDesc:  "Points every link tag in the article text at the given participant number.",
		Syntax:    "article renumber <number>",
		Examples:  []string{"article renumber 2"},
	},
	{
		Scope:     "article",
		Operation: "attrs",
		ShortDesc: "List article attributes",
		LongDesc:  "Lists catalog article attribute names, optionally filtered by a substring. With --set, only attributes populated on the selected article are listed.",
		Syntax:    "article attrs [query] [--set]",
		Examples:  []string{"article attrs morale", "article attrs --set"},
	},
	{
		Scope:     "participant",
		Operation: "add",
		ShortDesc: "Add a participant requirement",
		LongDesc:  "Appends a participant requirement of the given type to the selected storyline. The first participant becomes the main actor.",
		Syntax:    "participant add <type>",
		Examples:  []string{"participant add PLAYER"},
	},
	{
		Scope:     "participant",
		Operation: "update",
		ShortDesc: "Set a participant attribute",
		LongDesc:  "Sets one attribute condition on the participant at the given index. An empty value clears it.",
		Syntax:    "participant update <index> <attribute> <value>",
		Examples:  []string{"participant update 0 position 2", "participant update 0 type TEAM"},
	},
	{
		Scope:     "participant",
		Operation: "delete",
		ShortDesc: "Delete a participant",
		LongDesc:  "Removes the participant requirement at the given index.",
		Syntax:    "participant delete <index>",
		Examples:  []string{"participant delete 1"},
	},
	{
		Scope:     "participant",
		Operation: "main",
		ShortDesc: "Set the main actor",
		LongDesc:  "Marks the participant at the given index as the main actor. Only one participant can be the main actor.",
		Syntax:    "participant main <index>",
		Examples:  []string{"participant main 0"},
	},
	{
		Scope:     "catalog",
		Operation: "types",
		ShortDesc: "List participant types",
		LongDesc:  "Lists the participant types defined in the attribute catalog.",
		Syntax:    "catalog types",
		Examples:  []string{"catalog types"},
	},
	{
		Scope:     "catalog",
		Operation: "attrs",
		ShortDesc: "List catalog attributes",
		LongDesc:  "Lists attribute names for a target: storyline, article, an article category, or a participant type.",
		Syntax:    "catalog attrs <storyline|article|category|type>",
		Examples:  []string{"catalog attrs storyline", "catalog attrs MODIFIER", "catalog attrs PLAYER"},
	},
	{
		Scope:     "catalog",
		Operation: "presets",
		ShortDesc: "List presets",
		LongDesc:  "Lists preset categories, or the presets within one category.",
		Syntax:    "catalog presets [category]",
		Examples:  []string{"catalog presets", "catalog presets MODIFIER"},
	},
	{
		Scope:     "catalog",
		Operation: "tooltip",
		ShortDesc: "Show an attribute description",
		LongDesc:  "Shows the catalog description and value kind of an attribute name.",
		Syntax:    "catalog tooltip <attribute>",
		Examples:  []string{"catalog tooltip morale_team"},
	},
	{
		Scope:     "profile",
		Operation: "add",
		ShortDesc: "Add a new profile",
		LongDesc:  "Creates a new editor profile with an optional password.",
		Syntax:    "profile add <name> [password]",
		Examples:  []string{"profile add scout", "profile add scout secret"},
	},
	{
		Scope:     "profile",
		Operation: "select",
		ShortDesc: "Select a profile",
		LongDesc:  "Authenticates and selects a profile for this session.",
		Syntax:    "profile select <name> [password]",
		Examples:  []string{"profile select default"},
	},
	{
		Scope:     "profile",
		Operation: "delete",
		ShortDesc: "Delete the current profile",
		LongDesc:  "Deletes the currently selected profile and its workspace data.",
		Syntax:    "profile delete <name>",
		Examples:  []string{"profile delete scout"},
	},
	{
		Scope:     "system",
		Operation: "exit",
		ShortDesc: "Exit the program",
		LongDesc:  "Exits the storyline editor.",
		Syntax:    "system exit",
		Examples:  []string{"system exit"},
	},
	{
		Scope:     "system",
		Operation: "quit",
		ShortDesc: "Exit the program",
		LongDesc:  "Exits the storyline editor. Equivalent to 'system exit'.",
		Syntax:    "system quit",
		Examples:  []string{"system quit"},
	},
}
