/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package photoutil

// configPage returns the template of the configuration web page served
// at address. gobra fills in the command forms at {{.}}.
func configPage(address string) string {
	return `
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>photosphere</title>
	<style>
		html, body { padding: 0; margin: 2% 0; font-family: sans-serif; }
		.container { max-width: 760px; margin: 0 auto; padding: 10px; }
		div[id^="gobra-"] blockquote { border-left: 3px solid #bbb; margin: .3em; color: #333; padding-left: 5px; font-size: 75%; }
		div[id^="gobra-"] code { font-weight: bold; }
		div[id^="gobra-"] input { font-family: monospace; margin-left: .2em; width: 50%; outline: none; }
		.bad { border: 1px solid #c35; }
		.file { border: 1px solid #3c5; }
		.typed { border: 1px solid #35c; }
	</style>
</head>
<body>
<div class="container">
	<h1>photosphere</h1>
	<p>Choose the star and the physics below, then run a model.</p>
	<p>
		Borders: none=default;
		<font color="#c35">red</font>=unreadable configuration file;
		<font color="#3c5">green</font>=from the configuration file;
		<font color="#35c">blue</font>=typed here
	</p>
	<div>
		{{.}}
	</div>
</div>

<script>
const fields = [...document.querySelectorAll('[data-name]')];
const mark = (input, cls) => {
	input.classList.remove("bad", "file", "typed");
	if (cls) input.classList.add(cls);
};
fields.forEach(f => f.children[0].addEventListener("input", () => mark(f.children[0], "typed")));

const cfg = fields.find(f => f.dataset.name == "config").children[0];
cfg.addEventListener("input", () => {
	fetch("http://` + address + `/setConfig?config=" + encodeURIComponent(cfg.value))
		.then(res => {
			if (res.status == 204) {
				mark(cfg, "bad");
				return;
			}
			if (res.status != 200) {
				res.text().then(t => console.log("/setConfig:", t));
				return;
			}
			res.json().then(data => {
				mark(cfg, null);
				for (const f of fields) {
					if (!(f.dataset.name in data)) continue;
					const input = f.children[0];
					const v = JSON.stringify(data[f.dataset.name]).replace(/^"+|"+$/g, '');
					if (input.value != v) {
						input.value = v;
						mark(input, "file");
					}
				}
			});
		})
		.catch(err => console.log("/setConfig:", err));
});
</script>
</body>
</html>`
}
