// @title           WeMatch API
// @version         1.0
// @description     Платформа возможностей: организации публикуют возможности, пользователи ищут и откликаются.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "wematch_backend/internal/app"

func main() {
	app.Run()
}
