package saturation

import (
	"fmt"
	"strings"
)

// 飽和点の探索方法
type Method string

const (
	Temperature          Method = "temperature"           // 圧力を与えて飽和温度を求める
	Pressure             Method = "pressure"              // 温度を与えて飽和圧力を求める
	BracketedTemperature Method = "temperature-bracketed" // 温度区間を与えて飽和温度を求める
)

// ParseMethod converts user input into a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case Temperature, Pressure, BracketedTemperature:
		return m, nil
	case "tsat":
		return Temperature, nil
	case "psat":
		return Pressure, nil
	case "tsat-bracketed":
		return BracketedTemperature, nil
	default:
		return "", fmt.Errorf("saturation: unknown method %q", s)
	}
}

// pinned returns the symbol and unit of the fixed variable.
func (m Method) pinned() (string, string) {
	switch m {
	case Temperature, BracketedTemperature:
		return "P", "kPa"
	case Pressure:
		return "T", "K"
	default:
		panic("invalid method")
	}
}

func (m Method) target() string {
	switch m {
	case Temperature, BracketedTemperature:
		return "saturation temperature"
	case Pressure:
		return "saturation pressure"
	default:
		panic("invalid method")
	}
}
