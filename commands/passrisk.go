package commands

type PassRiskCommand struct {
	Check   CheckCommand   `command:"check" description:"Analyze how quickly a password could be compromised"`
	Fetch   FetchCommand   `command:"fetch" description:"Download a top-passwords list for breach-rank warnings"`
	Update  UpdateCommand  `command:"update" description:"Update passrisk to the latest version"`
	Version VersionCommand `command:"version" description:"Displays passrisk version" alias:"V"`
}

var PassRisk PassRiskCommand
