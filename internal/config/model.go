package config

var defaultConfig = Config{
	Widget: Widget{
		Title:            "perch",
		Reposition:       true,
		TerminateCommand: true,
	},
	Autostart: Autostart{
		Enabled: true,
	},
	State: State{
		Restore: true,
	},
}

type Config struct {
	Widget    Widget    `json:"widget"`
	Autostart Autostart `json:"autostart"`
	State     State     `json:"state"`
}

// Widget configures the single widget window. Reposition controls the
// startup corner placement; TerminateCommand exposes the quit action to the
// front-end. Both default on.
type Widget struct {
	UUID             string `json:"uuid"`
	Title            string `json:"title"`
	Reposition       bool   `json:"reposition"`
	TerminateCommand bool   `json:"terminate_command"`
}

type Autostart struct {
	Enabled bool `json:"enabled"`
}

type State struct {
	Restore bool `json:"restore"`
}
