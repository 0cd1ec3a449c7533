package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/NisargPatel57/Ecommerce--EI/logic"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(envFrom(nil))

	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Nil(t, cfg.Discount)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	cfg, err := LoadConfig(envFrom(map[string]string{
		"LOG_LEVEL": "debug",
		"DISCOUNT":  "percentage:10",
	}))

	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "percentage 10%", logic.DescribePolicy(cfg.Discount))
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	_, err := LoadConfig(envFrom(map[string]string{"LOG_LEVEL": "loud"}))

	var cmdErr *logic.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, logic.StatusInvalidArgument, cmdErr.Code)
}

func TestLoadConfig_InvalidDiscount(t *testing.T) {
	_, err := LoadConfig(envFrom(map[string]string{"DISCOUNT": "percentage:200"}))

	var cmdErr *logic.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, logic.ErrMsgPercentageRange, cmdErr.Message)
}

func TestRun_PrintsScenario(t *testing.T) {
	var out bytes.Buffer

	run(&out, &Config{LogLevel: zapcore.InfoLevel}, zap.NewNop())

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Possible Inputs:\n"))
	assert.Contains(t, text, "Cart Items:\nYou have 1 Laptop, 2 Laptop in your cart.\n")
	assert.Contains(t, text, "Total Bill: Your total bill is $3000.\n")
	assert.Contains(t, text, "TOTAL:                 $3000.00")
	assert.NotContains(t, text, "Headphones @")
}

func TestRun_AppliesConfiguredDiscount(t *testing.T) {
	var out bytes.Buffer

	run(&out, &Config{Discount: logic.NewPercentageDiscount(10)}, zap.NewNop())

	text := out.String()
	assert.Contains(t, text, "Total Bill: Your total bill is $3000.\n")
	assert.Contains(t, text, "Discount (percentage 10%):       -$300.00")
	assert.Contains(t, text, "TOTAL:                 $2700.00")
}
