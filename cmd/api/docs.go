package main

// @title Snowreg API
// @version 1.0
// @description Snow observations, avalanche forecasts, and regional mountain weather.

// @contact.name API Support

// @license.name MIT

// @BasePath /
