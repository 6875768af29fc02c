package ftstate

import (
	"os"
	"path/filepath"

	"github.com/filetug/ftbrowse/pkg/fsutils"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftsettings"
	"github.com/sirupsen/logrus"
)

const stateFileName = "ftbrowse-state.json"

var settingsDirPath = fsutils.ExpandHome(ftsettings.UserDir)

// State is what is remembered between runs.
type State struct {
	Store      string `json:"store,omitempty"`
	CurrentDir string `json:"current_dir,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(msg string, err error) {
	logrus.WithError(err).Error(msg)
}

func GetState() (*State, error) {
	filePath := getStateFilePath()
	var state State
	return &state, readJSON(filePath, false, &state)
}

// SaveCurrentDir remembers the directory being browsed and the URL of the
// store it belongs to.
func SaveCurrentDir(store, currentDir string) {
	saveSettingValue(func(state *State) {
		state.Store = store
		state.CurrentDir = currentDir
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func saveSettingValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	err := readJSON(filePath, false, &state)
	if err != nil {
		logErr("ftstate: error reading state file", err)
	}

	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("ftstate: error creating settings directory", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("ftstate: settings path is not a directory", nil)
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("ftstate: error writing state file", err)
		return
	}
}
