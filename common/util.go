package common

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

func GetAssetAbsPath(fileName string) (string, error) {
	return GetAbsPath(fileName, "assets")
}

func GetAbsPath(fileName, dirName string) (string, error) {
	_, cFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("runtime.Caller error")
	}
	dir := filepath.Dir(cFilePath)
	path := fmt.Sprintf("%s/%s/%s", dir, dirName, fileName)
	_, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return path, nil
}

func GetAsset(filename string) (string, error) {
	path, err := GetAssetAbsPath(filename)
	if err != nil {
		return "", err
	}
	return ReadFile(path)
}

func ReadFile(filepath string) (string, error) {
	bytes, err := os.ReadFile(filepath)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func IsDirWritable(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", dirPath)
	}
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dirPath)
	}

	tempFile, err := os.CreateTemp(dirPath, "test-write-*.tmp")
	if err != nil {
		return fmt.Errorf("write permission denied for directory: %s", dirPath)
	}
	fileName := tempFile.Name()
	tempFile.Close()

	if err := os.Remove(fileName); err != nil {
		return fmt.Errorf("failed to remove temporary file: %s", err)
	}

	return nil
}

func ReadSettingsFile(settingsPath string) (string, error) {
	bytes, err := os.ReadFile(settingsPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read settings file/path:%s/reason:%s",
			settingsPath, err))
		if absolutePath, err := filepath.Abs(settingsPath); err != nil {
			zap.L().Error(fmt.Sprintf("failed to get absolute path of %s/reason:%s",
				settingsPath, err))
		} else {
			zap.L().Debug(fmt.Sprintf("absolute path:%s", absolutePath))
		}
		return "", err
	}
	return string(bytes), nil
}

var anglePattern = regexp.MustCompile(`^([+-]?)(?:([0-9]*\.?[0-9]+)\s*\*?\s*)?pi(?:\s*/\s*([0-9]*\.?[0-9]+))?$`)

// ParseAngle accepts plain numbers and multiples of pi such as "pi",
// "-pi/2", "3*pi/4" or "0.5pi".
func ParseAngle(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty angle")
	}
	m := anglePattern.FindStringSubmatch(s)
	if m == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not an angle", s)
		}
		return v, nil
	}
	v := math.Pi
	if m[2] != "" {
		coef, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not an angle", s)
		}
		v *= coef
	}
	if m[3] != "" {
		denom, err := strconv.ParseFloat(m[3], 64)
		if err != nil || denom == 0 {
			return 0, fmt.Errorf("%q is not an angle", s)
		}
		v /= denom
	}
	if m[1] == "-" {
		v = -v
	}
	return v, nil
}

var angleDenominators = []int{1, 2, 3, 4, 6, 8, 12, 16}

// FormatAngle renders small rational multiples of pi symbolically ("pi/2",
// "-3*pi/4") when ParseAngle gives back exactly v, and any other value as the
// shortest round-tripping float.
func FormatAngle(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	for _, d := range angleDenominators {
		k := math.Round(abs / math.Pi * float64(d))
		if k == 0 || math.Pi*k/float64(d) != abs {
			continue
		}
		var b strings.Builder
		if v < 0 {
			b.WriteString("-")
		}
		if k != 1 {
			b.WriteString(strconv.FormatFloat(k, 'f', 0, 64) + "*")
		}
		b.WriteString("pi")
		if d != 1 {
			b.WriteString("/" + strconv.Itoa(d))
		}
		return b.String()
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
